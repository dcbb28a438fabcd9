// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way, plus the ActivityDispatcher
// that performs fire-and-forget activity-log writes off the caller's path.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to return promptly and spawn goroutines
// internally.
type Worker interface {
	Run()
}

// Stopper is implemented by workers that own goroutines and must be drained
// on shutdown.
type Stopper interface {
	Stop()
}

// Task is a unit of background work. Its error is logged and otherwise
// discarded.
type Task func(ctx context.Context) error

// Dispatcher accepts tasks for asynchronous execution.
type Dispatcher interface {
	// Dispatch schedules task and reports whether it was accepted. It never
	// blocks: a full queue or a stopped dispatcher rejects the task.
	Dispatch(ctx context.Context, name string, task Task) bool
}
