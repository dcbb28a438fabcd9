// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
)

// DefaultQueueSize is used when NewActivityDispatcher receives a non-positive size.
const DefaultQueueSize = 64

type job struct {
	ctx  context.Context
	name string
	task Task
}

// ActivityDispatcher executes tasks on a single background goroutine fed by a
// bounded queue. Results are discarded; failures are only logged.
type ActivityDispatcher struct {
	queue  chan job
	logger *logger.Logger

	mu      sync.RWMutex
	stopped bool

	startOnce sync.Once
	wg        sync.WaitGroup
}

// NewActivityDispatcher creates an idle dispatcher whose queue holds up to
// size tasks. Tasks dispatched before Run wait in the queue.
func NewActivityDispatcher(size int, log *logger.Logger) *ActivityDispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if log == nil {
		log = logger.Nop()
	}

	return &ActivityDispatcher{
		queue:  make(chan job, size),
		logger: log,
	}
}

// Run implements [Worker]. It starts the worker goroutine once; further calls
// are no-ops.
func (d *ActivityDispatcher) Run() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		go d.loop()
	})
}

// Dispatch implements [Dispatcher]. The task runs with a context that keeps
// the values of ctx but not its cancellation, so it outlives the caller.
func (d *ActivityDispatcher) Dispatch(ctx context.Context, name string, task Task) bool {
	if task == nil {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.logger.Warn().Str("task", name).Msg("dispatcher stopped, task dropped")
		return false
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), name: name, task: task}:
		return true
	default:
		d.logger.Warn().Str("task", name).Int("queue_size", cap(d.queue)).Msg("activity queue is full, task dropped")
		return false
	}
}

// Stop implements [Stopper]. It rejects new tasks, runs everything already
// queued and waits for the worker goroutine to exit. Safe to call twice.
func (d *ActivityDispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.Run()
	d.wg.Wait()
}

func (d *ActivityDispatcher) loop() {
	defer d.wg.Done()

	for j := range d.queue {
		d.execute(j)
	}
}

func (d *ActivityDispatcher) execute(j job) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Str("task", j.name).Interface("panic", r).Msg("background task panicked")
		}
	}()

	if err := j.task(j.ctx); err != nil {
		d.logger.Err(err).Str("task", j.name).Msg("background task failed")
	}
}
