package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []int64{7, 8, 9}, Seeds(7, 3))
	assert.Empty(t, Seeds(7, 0))
	assert.Empty(t, Seeds(7, -2))
}

func TestNewRunnerRejectsZeroWorkers(t *testing.T) {
	_, err := NewRunner(0)
	assert.ErrorIs(t, err, ErrNoWorkers)
}

func TestRunAllSeeds(t *testing.T) {
	var calls atomic.Int32
	var reported []int64

	r, err := NewRunner(3, WithProgress(func(res Result) {
		reported = append(reported, res.Seed)
	}))
	require.NoError(t, err)

	results, err := r.Run(context.Background(), Seeds(10, 8), func(ctx context.Context, seed int64) (string, error) {
		calls.Add(1)
		return fmt.Sprintf("run_%d", seed), nil
	})
	require.NoError(t, err)

	assert.EqualValues(t, 8, calls.Load())
	assert.Len(t, reported, 8)
	require.Len(t, results, 8)
	for i, res := range results {
		assert.Equal(t, int64(10+i), res.Seed)
		assert.Equal(t, fmt.Sprintf("run_%d", 10+i), res.Run)
		assert.NoError(t, res.Err)
	}
}

func TestRunRespectsWorkerLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	r, err := NewRunner(2)
	require.NoError(t, err)

	_, err = r.Run(context.Background(), Seeds(0, 20), func(ctx context.Context, seed int64) (string, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		inFlight.Add(-1)
		return "", nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunStopsOnFirstError(t *testing.T) {
	boom := errors.New("boom")

	r, err := NewRunner(1)
	require.NoError(t, err)

	var calls atomic.Int32
	results, err := r.Run(context.Background(), Seeds(0, 10), func(ctx context.Context, seed int64) (string, error) {
		calls.Add(1)
		if seed == 2 {
			return "", boom
		}
		return "ok", nil
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "seed 2")
	assert.ErrorIs(t, results[2].Err, boom)
	assert.Less(t, calls.Load(), int32(10))
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRunner(4)
	require.NoError(t, err)

	var calls atomic.Int32
	_, err = r.Run(ctx, Seeds(0, 5), func(ctx context.Context, seed int64) (string, error) {
		calls.Add(1)
		return "", nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}
