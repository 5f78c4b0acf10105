package testing

import (
	"context"
	"errors"
	"sync"

	"github.com/go-drift/inspect/pkg/inspect"
)

// ErrInspectionClosed is returned once an Inspection has been closed.
var ErrInspectionClosed = errors.New("inspection closed")

// Inspection hands widgets from app code to a test. The app calls Notify
// from a lifecycle callback, such as the point a screen appears; the test
// calls Inspect to wait for that moment and look at the widget.
//
//	appeared := drifttest.NewInspection[Screen]()
//	screen.OnAppear = appeared.Notify
//	go app.Run()
//	err := appeared.Inspect(ctx, func(v *inspect.View) error {
//	    _, err := inspect.Find(v, inspect.HasText("Ready"))
//	    return err
//	})
type Inspection[W any] struct {
	notices chan W
	done    chan struct{}
	once    sync.Once
	opts    []inspect.Option
}

// NewInspection creates an Inspection that inspects widgets with opts.
func NewInspection[W any](opts ...inspect.Option) *Inspection[W] {
	return &Inspection[W]{
		notices: make(chan W),
		done:    make(chan struct{}),
		opts:    opts,
	}
}

// Notify delivers w to a waiting Inspect call. It blocks until one takes it
// and returns false without delivering if the Inspection is closed first.
func (i *Inspection[W]) Notify(w W) bool {
	select {
	case <-i.done:
		return false
	default:
	}
	select {
	case i.notices <- w:
		return true
	case <-i.done:
		return false
	}
}

// Inspect waits for the next notice, inspects the widget and returns what
// fn returns. It fails with ctx.Err() if ctx ends first and with
// ErrInspectionClosed after Close.
func (i *Inspection[W]) Inspect(ctx context.Context, fn func(*inspect.View) error) error {
	var w W
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-i.done:
		return ErrInspectionClosed
	case w = <-i.notices:
	}
	root, err := inspect.Inspect(w, i.opts...)
	if err != nil {
		return err
	}
	return fn(root)
}

// Close stops further notices and releases every blocked Notify. It is
// safe to call more than once.
func (i *Inspection[W]) Close() {
	i.once.Do(func() { close(i.done) })
}
