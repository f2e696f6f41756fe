// Package readiness gates presentation of the site until the process has
// finished loading, every preparation task has settled and a minimum display
// floor has elapsed.
//
// The gate favors availability: a failing task is recorded and logged but
// never keeps the gate closed.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMinimumDuration keeps the loader up long enough to avoid a flash
	// on fast starts.
	DefaultMinimumDuration = 800 * time.Millisecond
	// DefaultSettleDelay is the short pause between settling and reveal.
	DefaultSettleDelay = 100 * time.Millisecond
)

const tracerName = "github.com/rkprasad/portfolio/internal/platform/readiness"

// Task is one preparation step the gate waits on.
type Task func(context.Context) error

// Named pairs a task with a label used in errors and logs.
type Named struct {
	Name string
	Run  Task
}

// Options configures a Gate.
type Options struct {
	// MinimumDuration is the floor before the gate may open. Zero uses the
	// default; a negative value disables the floor.
	MinimumDuration time.Duration
	// SettleDelay runs after all tasks settled. Zero uses the default; a
	// negative value disables it.
	SettleDelay time.Duration
	// Development enables logging of task failures.
	Development bool
	Logger      *log.Logger
}

// Gate tracks loading state. The zero value is not usable; call New.
type Gate struct {
	minimum     time.Duration
	settle      time.Duration
	development bool
	logger      *log.Logger

	// notifyMu orders observer delivery with the ready transition. It is
	// taken before mu.
	notifyMu sync.Mutex

	mu        sync.Mutex
	ready     bool
	err       error
	running   bool
	observers []func(bool)
	done      chan struct{}
}

// New builds a gate in the loading state.
func New(opts Options) *Gate {
	minimum := opts.MinimumDuration
	if minimum == 0 {
		minimum = DefaultMinimumDuration
	}
	settle := opts.SettleDelay
	if settle == 0 {
		settle = DefaultSettleDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Gate{
		minimum:     max(minimum, 0),
		settle:      max(settle, 0),
		development: opts.Development,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Ready reports whether the gate has opened.
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// Done is closed when the gate opens.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// Err returns the joined preparation failures observed before opening.
func (g *Gate) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

// OnChange registers fn to receive the current state immediately and the
// ready transition once it happens. Deliveries are serialized and fn must
// not call back into OnChange.
func (g *Gate) OnChange(fn func(ready bool)) {
	if fn == nil {
		return
	}
	g.notifyMu.Lock()
	defer g.notifyMu.Unlock()
	g.mu.Lock()
	g.observers = append(g.observers, fn)
	ready := g.ready
	g.mu.Unlock()
	fn(ready)
}

// Wait blocks until the gate opens or ctx ends.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run waits for loaded, every task and the minimum floor, then opens the gate
// after the settle delay. A nil loaded channel counts as already loaded.
//
// Task failures never keep the gate closed; they are available through Err.
// Run returns a non-nil error only when ctx ends first, in which case the gate
// stays loading. Calling Run on a gate that is running or open is an error.
func (g *Gate) Run(ctx context.Context, loaded <-chan struct{}, tasks ...Named) error {
	g.mu.Lock()
	if g.running || g.ready {
		g.mu.Unlock()
		return errors.New("readiness gate already started")
	}
	g.running = true
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		g.running = false
		g.mu.Unlock()
	}()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "readiness.gate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("readiness.tasks", len(tasks)),
		attribute.Int64("readiness.minimum_ms", g.minimum.Milliseconds()),
	)

	var (
		failuresMu sync.Mutex
		failures   []error
	)
	record := func(err error) {
		failuresMu.Lock()
		failures = append(failures, err)
		failuresMu.Unlock()
	}

	var group errgroup.Group
	group.Go(func() error {
		return waitLoaded(ctx, loaded)
	})
	group.Go(func() error {
		return sleep(ctx, g.minimum)
	})
	for idx, task := range tasks {
		if task.Run == nil {
			continue
		}
		name := task.Name
		if name == "" {
			name = fmt.Sprintf("task-%d", idx)
		}
		group.Go(func() error {
			if err := runTask(ctx, task.Run); err != nil {
				record(fmt.Errorf("%s: %w", name, err))
			}
			return nil
		})
	}

	settled := make(chan struct{})
	go func() {
		_ = group.Wait()
		close(settled)
	}()

	select {
	case <-settled:
	case <-ctx.Done():
		span.SetStatus(codes.Error, "cancelled before ready")
		return ctx.Err()
	}
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, "cancelled before ready")
		return err
	}
	if err := sleep(ctx, g.settle); err != nil {
		return err
	}

	failuresMu.Lock()
	joined := errors.Join(failures...)
	failuresMu.Unlock()
	if joined != nil {
		span.RecordError(joined)
		if g.development {
			g.logger.Printf("readiness: preparation failed, opening anyway err=%v", joined)
		}
	}
	g.open(joined)
	return nil
}

func (g *Gate) open(err error) {
	g.notifyMu.Lock()
	defer g.notifyMu.Unlock()
	g.mu.Lock()
	if g.ready {
		g.mu.Unlock()
		return
	}
	g.ready = true
	g.err = err
	observers := append([]func(bool){}, g.observers...)
	close(g.done)
	g.mu.Unlock()

	for _, fn := range observers {
		fn(true)
	}
}

func runTask(ctx context.Context, task Task) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v stack=%s", recovered, debug.Stack())
		}
	}()
	return task(ctx)
}

func waitLoaded(ctx context.Context, loaded <-chan struct{}) error {
	if loaded == nil {
		return nil
	}
	select {
	case <-loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
