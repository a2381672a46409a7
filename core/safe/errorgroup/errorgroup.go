// Package errorgroup provides a panic-safe error group with context awareness
// and error aggregation for concurrent operations.
package errorgroup

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/RRWM1rr0rB/uuidx/errors"
	"github.com/RRWM1rr0rB/uuidx/logging"
)

// ErrPanic marks an error produced by a recovered panic.
var ErrPanic = errors.New("errorgroup: recovered panic")

// SafeGroup enhances errgroup.Group with panic recovery and error aggregation.
// Tasks started after the group context is cancelled are skipped.
type SafeGroup struct {
	eg      *errgroup.Group
	parent  context.Context
	ctx     context.Context
	mu      sync.Mutex
	errs    []error
	recover RecoverFunc
	limit   int
}

// RecoverFunc defines a custom panic recovery handler.
type RecoverFunc func(ctx context.Context, r any)

// DefaultRecover logs panics with stack traces through the context logger.
func DefaultRecover(ctx context.Context, r any) {
	logging.L(ctx).Error("recovered from panic",
		logging.StringAttr("panic", fmt.Sprint(r)),
		logging.StringAttr("stack", string(debug.Stack())),
	)
}

// Option configures a SafeGroup.
type Option func(*SafeGroup)

// WithRecover sets a custom panic recovery handler.
func WithRecover(recover RecoverFunc) Option {
	return func(g *SafeGroup) {
		g.recover = recover
	}
}

// WithLimit caps the number of tasks running at once. n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(g *SafeGroup) {
		g.limit = n
	}
}

// WithContext initializes a SafeGroup with a context and options.
func WithContext(ctx context.Context, opts ...Option) (*SafeGroup, context.Context) {
	eg, gctx := errgroup.WithContext(ctx)
	g := &SafeGroup{
		eg:     eg,
		parent: ctx,
		ctx:    gctx,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.recover == nil {
		g.recover = DefaultRecover
	}
	if g.limit > 0 {
		eg.SetLimit(g.limit)
	}
	return g, gctx
}

// Go runs fn in a goroutine with panic recovery. fn is not called once the
// group context is done.
func (g *SafeGroup) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() (err error) {
		if g.ctx.Err() != nil {
			return nil
		}
		defer func() {
			if r := recover(); r != nil {
				g.recover(g.ctx, r)
				err = fmt.Errorf("%w: %v", ErrPanic, r)
				g.collect(err)
			}
		}()
		err = fn(g.ctx)
		g.collect(err)
		return err
	})
}

// Wait blocks until all goroutines complete and returns the aggregated errors.
// If no task failed but the parent context ended, its error is returned since
// some tasks may have been skipped.
func (g *SafeGroup) Wait() error {
	_ = g.eg.Wait()

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.errs) > 0 {
		return errors.Append(nil, g.errs...)
	}
	return g.parent.Err()
}

// Errors returns a copy of all collected errors.
func (g *SafeGroup) Errors() []error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]error{}, g.errs...)
}

func (g *SafeGroup) collect(err error) {
	if err == nil {
		return
	}
	g.mu.Lock()
	g.errs = append(g.errs, err)
	g.mu.Unlock()
}
