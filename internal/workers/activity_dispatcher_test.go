package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/utils"
)

func TestActivityDispatcher_RunsTasksInOrder(t *testing.T) {
	d := NewActivityDispatcher(8, logger.Nop())
	d.Run()

	var mu sync.Mutex
	var got []int
	for i := 1; i <= 5; i++ {
		i := i
		ok := d.Dispatch(context.Background(), "record", func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, i)
			return nil
		})
		require.True(t, ok)
	}

	d.Stop()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestActivityDispatcher_StopDrainsWithoutRun(t *testing.T) {
	d := NewActivityDispatcher(4, logger.Nop())

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		d.Dispatch(context.Background(), "record", func(ctx context.Context) error {
			calls.Add(1)
			return nil
		})
	}

	// задачи ждут в очереди, пока Stop не запустит воркер
	d.Stop()

	assert.Equal(t, int32(3), calls.Load())
}

func TestActivityDispatcher_FullQueueDrops(t *testing.T) {
	d := NewActivityDispatcher(1, logger.Nop())

	assert.True(t, d.Dispatch(context.Background(), "first", func(ctx context.Context) error { return nil }))
	assert.False(t, d.Dispatch(context.Background(), "second", func(ctx context.Context) error { return nil }))

	d.Stop()
}

func TestActivityDispatcher_RejectsAfterStop(t *testing.T) {
	d := NewActivityDispatcher(1, logger.Nop())
	d.Run()
	d.Stop()

	assert.False(t, d.Dispatch(context.Background(), "late", func(ctx context.Context) error { return nil }))

	// повторный Stop безопасен
	d.Stop()
}

func TestActivityDispatcher_RejectsNilTask(t *testing.T) {
	d := NewActivityDispatcher(1, logger.Nop())
	defer d.Stop()

	assert.False(t, d.Dispatch(context.Background(), "nil", nil))
}

func TestActivityDispatcher_ErrorsAndPanicsDoNotStopWorker(t *testing.T) {
	d := NewActivityDispatcher(4, logger.Nop())
	d.Run()

	var done atomic.Bool
	d.Dispatch(context.Background(), "fails", func(ctx context.Context) error { return errors.New("boom") })
	d.Dispatch(context.Background(), "panics", func(ctx context.Context) error { panic("boom") })
	d.Dispatch(context.Background(), "ok", func(ctx context.Context) error {
		done.Store(true)
		return nil
	})

	d.Stop()

	assert.True(t, done.Load())
}

func TestActivityDispatcher_DetachesCancellationKeepsValues(t *testing.T) {
	d := NewActivityDispatcher(1, logger.Nop())

	ctx, cancel := context.WithCancel(utils.WithTraceID(context.Background(), "trace-1"))
	cancel()

	var traceID string
	var ctxErr error
	d.Dispatch(ctx, "record", func(ctx context.Context) error {
		traceID, _ = utils.GetTraceIDFromContext(ctx)
		ctxErr = ctx.Err()
		return nil
	})
	d.Stop()

	assert.Equal(t, "trace-1", traceID)
	assert.NoError(t, ctxErr)
}

func TestActivityDispatcher_DispatchDoesNotBlock(t *testing.T) {
	d := NewActivityDispatcher(1, logger.Nop())
	d.Run()

	release := make(chan struct{})
	d.Dispatch(context.Background(), "slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	start := time.Now()
	for i := 0; i < 10; i++ {
		d.Dispatch(context.Background(), "burst", func(ctx context.Context) error { return nil })
	}
	assert.Less(t, time.Since(start), time.Second)

	close(release)
	d.Stop()
}

func TestNewActivityDispatcher_DefaultSize(t *testing.T) {
	d := NewActivityDispatcher(0, nil)
	defer d.Stop()

	assert.Equal(t, DefaultQueueSize, cap(d.queue))
}

func TestActivityDispatcher_ImplementsWorkerInterfaces(t *testing.T) {
	var _ Worker = (*ActivityDispatcher)(nil)
	var _ Stopper = (*ActivityDispatcher)(nil)
	var _ Dispatcher = (*ActivityDispatcher)(nil)
}
