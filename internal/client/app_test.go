package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/tui"
	"github.com/MKhiriev/go-employee-registry/internal/workers"
)

type fakeUI struct {
	err    error
	events *[]string
}

func (f fakeUI) Run(ctx context.Context) error {
	*f.events = append(*f.events, "ui")
	return f.err
}

type fakeWorker struct {
	events *[]string
}

func (w fakeWorker) Run()  { *w.events = append(*w.events, "run") }
func (w fakeWorker) Stop() { *w.events = append(*w.events, "stop") }

type fakeCloser struct {
	err    error
	events *[]string
}

func (c fakeCloser) Close() error {
	*c.events = append(*c.events, "close")
	return c.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_LifecycleOrder(t *testing.T) {
	var events []string
	app, err := NewApp(
		fakeUI{events: &events},
		workers.NewWorkers(fakeWorker{events: &events}),
		fakeCloser{events: &events},
		logger.Nop(),
	)
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.Equal(t, []string{"run", "ui", "stop", "close"}, events)
}

func TestApp_UserQuitIsNotAnError(t *testing.T) {
	var events []string
	app, err := NewApp(fakeUI{err: tui.ErrUserQuit, events: &events}, nil, nil, nil)
	require.NoError(t, err)

	assert.NoError(t, app.run(context.Background()))
}

func TestApp_UIErrorWrapped(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	app, err := NewApp(fakeUI{err: boom, events: &events}, nil, fakeCloser{err: errors.New("close failed"), events: &events}, logger.Nop())
	require.NoError(t, err)

	err = app.run(context.Background())
	assert.ErrorIs(t, err, boom)
	// ошибка закрытия только логируется
	assert.Equal(t, []string{"ui", "close"}, events)
}

func TestApp_DrainsDispatcherBeforeClose(t *testing.T) {
	var done atomic.Bool
	var doneAtClose bool

	dispatcher := workers.NewActivityDispatcher(4, logger.Nop())
	dispatcher.Dispatch(context.Background(), "record", func(ctx context.Context) error {
		done.Store(true)
		return nil
	})

	var events []string
	closer := closerFunc(func() error {
		doneAtClose = done.Load()
		return nil
	})
	app, err := NewApp(fakeUI{events: &events}, workers.NewWorkers(dispatcher), closer, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	// задача из очереди выполнена до закрытия хранилищ
	assert.True(t, doneAtClose)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
