package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	var sum atomic.Int64
	err := ForEach(context.Background(), []int{1, 2, 3, 4}, 2, func(_ context.Context, v int) error {
		sum.Add(int64(v))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), sum.Load())
}

func TestForEachReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := ForEach(context.Background(), []int{1, 2, 3}, 1, func(_ context.Context, v int) error {
		if v == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestForEachRespectsLimit(t *testing.T) {
	var running, peak atomic.Int32
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- ForEach(context.Background(), make([]int, 8), 3, func(context.Context, int) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			running.Add(-1)
			return nil
		})
	}()

	close(release)
	require.NoError(t, <-done)
	assert.LessOrEqual(t, peak.Load(), int32(3))
}

func TestMapPreservesOrder(t *testing.T) {
	out, err := Map(context.Background(), []string{"a", "bb", "ccc"}, 0, func(_ context.Context, s string) (int, error) {
		return len(s), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)

	_, err = Map(context.Background(), []int{1}, 1, func(context.Context, int) (int, error) {
		return 0, errors.New("nope")
	})
	assert.Error(t, err)
}

func TestForEachCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := ForEach(ctx, []int{1}, 1, func(context.Context, int) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
