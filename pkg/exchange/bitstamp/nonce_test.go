package bitstamp

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitstampgo/pkg/core"
)

// fixedNonce always returns the same value.
type fixedNonce string

func (n fixedNonce) Next() string { return string(n) }

func frozenClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0) }
}

func TestUnixNonce(t *testing.T) {
	n := &UnixNonce{now: frozenClock(1000000000)}

	assert.Equal(t, "1000000000", n.Next())
	assert.Equal(t, "1000000000", n.Next())
}

func TestUnixNonce_Format(t *testing.T) {
	v, err := strconv.ParseInt(NewUnixNonce().Next(), 10, 64)

	require.NoError(t, err)
	assert.InDelta(t, time.Now().Unix(), v, 5)
}

func TestCounterNonce_SameSecond(t *testing.T) {
	n := &CounterNonce{now: frozenClock(1000000000)}

	assert.Equal(t, "1000000000", n.Next())
	assert.Equal(t, "1000000001", n.Next())
	assert.Equal(t, "1000000002", n.Next())
}

func TestCounterNonce_ClockAdvances(t *testing.T) {
	sec := int64(1000000000)
	n := &CounterNonce{now: func() time.Time { return time.Unix(sec, 0) }}

	assert.Equal(t, "1000000000", n.Next())
	sec = 1000000010
	assert.Equal(t, "1000000010", n.Next())
	sec = 1000000005
	assert.Equal(t, "1000000011", n.Next())
}

func TestCounterNonce_Concurrent(t *testing.T) {
	n := &CounterNonce{now: frozenClock(1000000000)}

	const workers, perWorker = 8, 50
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				v := n.Next()
				mu.Lock()
				seen[v] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestNonceSourceFor(t *testing.T) {
	assert.IsType(t, &CounterNonce{}, NonceSourceFor(core.NonceCounter))
	assert.IsType(t, &UnixNonce{}, NonceSourceFor(core.NonceUnix))
	assert.IsType(t, &UnixNonce{}, NonceSourceFor(""))
}
