package bitstamp

import (
	"strconv"
	"sync"
	"time"

	"bitstampgo/pkg/core"
)

// NonceSource yields the nonce for the next private call as a decimal string.
type NonceSource interface {
	Next() string
}

// UnixNonce emits the current Unix time in seconds. Two calls within the same
// second share a nonce, which the exchange rejects for the second call.
type UnixNonce struct {
	now func() time.Time
}

// NewUnixNonce returns a seconds-resolution nonce source.
func NewUnixNonce() *UnixNonce {
	return &UnixNonce{now: time.Now}
}

func (n *UnixNonce) Next() string {
	return strconv.FormatInt(n.now().Unix(), 10)
}

// CounterNonce starts at the current Unix second and never repeats: when the
// clock has not advanced past the last value it returns last+1.
type CounterNonce struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewCounterNonce returns a strictly increasing nonce source.
func NewCounterNonce() *CounterNonce {
	return &CounterNonce{now: time.Now}
}

func (n *CounterNonce) Next() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	v := n.now().Unix()
	if v <= n.last {
		v = n.last + 1
	}
	n.last = v
	return strconv.FormatInt(v, 10)
}

// NonceSourceFor maps a core.Config nonce mode to its source.
func NonceSourceFor(mode string) NonceSource {
	if mode == core.NonceCounter {
		return NewCounterNonce()
	}
	return NewUnixNonce()
}
