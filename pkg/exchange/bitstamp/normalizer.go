package bitstamp

import (
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"bitstampgo/pkg/core"
)

// NormalizeFunc turns a decoded success response into its typed form. It must
// not modify raw.
type NormalizeFunc func(raw any) (any, error)

// coercion lists the fields of one response object that carry numbers as text.
type coercion struct {
	decimals []string
	ints     []string
}

func decimals(names ...string) coercion {
	return coercion{decimals: names}
}

func (c coercion) withInts(names ...string) coercion {
	c.ints = append(c.ints, names...)
	return c
}

// apply returns a copy of obj with the listed fields converted. Fields not
// listed are carried over as decoded.
func (c coercion) apply(obj map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(obj))
	maps.Copy(out, obj)

	for _, name := range c.ints {
		v, ok := obj[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", core.ErrCoercion, name)
		}
		n, err := toInt(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = n
	}

	for _, name := range c.decimals {
		v, ok := obj[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", core.ErrCoercion, name)
		}
		d, err := toDecimal(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = d
	}

	return out, nil
}

func normalizeObject(c coercion) NormalizeFunc {
	return func(raw any) (any, error) {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected object, got %T", core.ErrCoercion, raw)
		}
		return c.apply(obj)
	}
}

func normalizeList(c coercion) NormalizeFunc {
	return func(raw any) (any, error) {
		items, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected list, got %T", core.ErrCoercion, raw)
		}
		out := make([]map[string]any, 0, len(items))
		for i, item := range items {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: item %d: expected object, got %T", core.ErrCoercion, i, item)
			}
			norm, err := c.apply(obj)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, norm)
		}
		return out, nil
	}
}

// normalizeObjectOrList accepts either shape; unconfirmed deposits have been
// served both as a single object and as a list.
func normalizeObjectOrList(c coercion) NormalizeFunc {
	object, list := normalizeObject(c), normalizeList(c)
	return func(raw any) (any, error) {
		if _, ok := raw.([]any); ok {
			return list(raw)
		}
		return object(raw)
	}
}

// normalizeBool maps the literal "true" to true and anything else to false.
func normalizeBool(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v == "true", nil
	case bool:
		return v, nil
	default:
		return false, nil
	}
}

func normalizeOpaque(raw any) (any, error) {
	return raw, nil
}

// normalizeOrderBook converts the [price, amount] pairs of both sides into
// {price, amount} objects, keeping their order.
func normalizeOrderBook(raw any) (any, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected object, got %T", core.ErrCoercion, raw)
	}

	out, err := coercion{ints: []string{"timestamp"}}.apply(obj)
	if err != nil {
		return nil, err
	}

	for _, side := range []string{"bids", "asks"} {
		levels, err := normalizeLevels(obj[side])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", side, err)
		}
		out[side] = levels
	}

	return out, nil
}

func normalizeLevels(raw any) ([]map[string]any, error) {
	pairs, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected list, got %T", core.ErrCoercion, raw)
	}

	levels := make([]map[string]any, 0, len(pairs))
	for i, p := range pairs {
		pair, ok := p.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: level %d: expected [price, amount]", core.ErrCoercion, i)
		}
		price, err := toDecimal(pair[0])
		if err != nil {
			return nil, fmt.Errorf("level %d price: %w", i, err)
		}
		amount, err := toDecimal(pair[1])
		if err != nil {
			return nil, fmt.Errorf("level %d amount: %w", i, err)
		}
		levels = append(levels, map[string]any{
			"price":  price,
			"amount": amount,
		})
	}

	return levels, nil
}

func toDecimal(v any) (*apd.Decimal, error) {
	switch val := v.(type) {
	case string:
		return parseDecimal(strings.TrimSpace(val))
	case json.Number:
		return parseDecimal(val.String())
	case float64:
		d := new(apd.Decimal)
		if _, err := d.SetFloat64(val); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrCoercion, err)
		}
		return d, nil
	case int64:
		return apd.New(val, 0), nil
	case *apd.Decimal:
		return new(apd.Decimal).Set(val), nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to decimal", core.ErrCoercion, v)
	}
}

func parseDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decimal %q: %v", core.ErrCoercion, s, err)
	}
	return d, nil
}

func toInt(v any) (int64, error) {
	switch val := v.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: integer %q", core.ErrCoercion, val)
		}
		return n, nil
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: integer %q", core.ErrCoercion, val.String())
		}
		return n, nil
	case float64:
		return int64(val), nil
	case int64:
		return val, nil
	default:
		return 0, fmt.Errorf("%w: cannot convert %T to integer", core.ErrCoercion, v)
	}
}
