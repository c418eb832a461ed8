package batch

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPreservesOrder(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	results, err := Map(context.Background(), items, 2, func(_ context.Context, n int) (string, error) {
		// Finish later items first to prove ordering is by index
		time.Sleep(time.Duration(6-n) * time.Millisecond)
		return strconv.Itoa(n * 10), nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"10", "20", "30", "40", "50"}, results)
}

func TestMapRespectsConcurrencyLimit(t *testing.T) {
	const limit = 2

	var mu sync.Mutex
	inFlight, peak := 0, 0

	items := make([]int, 20)
	_, err := Map(context.Background(), items, limit, func(_ context.Context, _ int) (struct{}, error) {
		mu.Lock()
		inFlight++
		if inFlight > peak {
			peak = inFlight
		}
		mu.Unlock()

		time.Sleep(time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		return struct{}{}, nil
	})

	require.NoError(t, err)
	assert.LessOrEqual(t, peak, limit)
	assert.Positive(t, peak)
}

func TestMapEachItemProcessedOnce(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var calls atomic.Int64
	results, err := Map(context.Background(), items, 8, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		return n, nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), calls.Load())
	assert.Equal(t, items, results)
}

func TestMapErrorFailsBatch(t *testing.T) {
	boom := errors.New("boom")
	items := []int{1, 2, 3, 4, 5}

	results, err := Map(context.Background(), items, 2, func(_ context.Context, n int) (int, error) {
		if n == 3 {
			return 0, boom
		}
		return n, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, results)
}

func TestMapErrorStopsRemainingWork(t *testing.T) {
	boom := errors.New("boom")
	items := make([]int, 50)

	var calls atomic.Int64
	_, err := Map(context.Background(), items, 1, func(_ context.Context, _ int) (int, error) {
		calls.Add(1)
		return 0, boom
	})

	assert.ErrorIs(t, err, boom)
	// Single worker fails on the first item and cancellation stops the rest
	assert.Equal(t, int64(1), calls.Load())
}

func TestMapZeroConcurrencyRunsSequentially(t *testing.T) {
	results, err := Map(context.Background(), []int{1, 2, 3}, 0, func(_ context.Context, n int) (int, error) {
		return n * n, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9}, results)
}

func TestMapEmptyInput(t *testing.T) {
	results, err := Map(context.Background(), []int(nil), 4, func(_ context.Context, _ int) (int, error) {
		t.Fatal("fn should not be called")
		return 0, nil
	})

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMapCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Map(ctx, []int{1, 2, 3}, 2, func(ctx context.Context, n int) (int, error) {
		return n, ctx.Err()
	})

	assert.ErrorIs(t, err, context.Canceled)
}
