package main

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
)

// printJSON writes v indented, with decimals rendered in plain notation.
func printJSON(w io.Writer, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(plain(v), "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func plain(v any) any {
	switch val := v.(type) {
	case *apd.Decimal:
		return val.Text('f')
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plain(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plain(item)
		}
		return out
	default:
		return v
	}
}
