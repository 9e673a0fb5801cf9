package fractal

import (
	"context"
	"errors"
	"sync"
)

// ErrRenderInFlight is returned when a render is requested while another one
// is still running.
var ErrRenderInFlight = errors.New("render in flight")

// Result is a finished render together with the request that produced it.
type Result struct {
	Generation uint64
	View       ViewWindow
	Field      *IterationField
	Err        error
}

// Renderer sequences renders for an interactive host. At most one render is
// in flight; its result is applied only if no newer request has been accepted
// since, so a late result never overwrites a newer view.
type Renderer struct {
	cfg Config

	mu         sync.Mutex
	view       ViewWindow
	maxIter    int
	generation uint64
	pending    bool
	cancel     context.CancelFunc
	done       chan struct{}
	result     *Result
	latest     *IterationField
}

// NewRenderer constructs a Renderer. Nothing is rendered until the first
// Submit.
func NewRenderer(cfg Config) *Renderer {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = def.MaxIter
	}
	if !(cfg.Zoom > 0) {
		cfg.Zoom = def.Zoom
	}
	if cfg.View.Validate() != nil {
		cfg.View = def.View
	}
	return &Renderer{cfg: cfg, view: cfg.View, maxIter: cfg.MaxIter}
}

// Size returns the raster dimensions.
func (r *Renderer) Size() (int, int) { return r.cfg.Width, r.cfg.Height }

// View returns the view of the most recently applied render.
func (r *Renderer) View() ViewWindow {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

// MaxIter returns the iteration budget of the most recent request.
func (r *Renderer) MaxIter() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxIter
}

// Field returns the most recently applied field, or nil before the first render.
func (r *Renderer) Field() *IterationField {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.latest
}

// Pending reports whether a render is in flight.
func (r *Renderer) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Submit starts rendering view with maxIter in the background. It returns
// ErrRenderInFlight while a previous render is running.
func (r *Renderer) Submit(ctx context.Context, view ViewWindow, maxIter int) (uint64, error) {
	if err := validate(r.cfg.Width, r.cfg.Height, view, maxIter); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending {
		return 0, ErrRenderInFlight
	}
	return r.startLocked(ctx, view, maxIter), nil
}

// Replace starts rendering view even when a render is in flight. The older
// render is cancelled and its result, should it still arrive, is discarded.
func (r *Renderer) Replace(ctx context.Context, view ViewWindow, maxIter int) (uint64, error) {
	if err := validate(r.cfg.Width, r.cfg.Height, view, maxIter); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	return r.startLocked(ctx, view, maxIter), nil
}

// Zoom recentres on the clicked pixel of the currently shown view and submits
// the narrower view.
func (r *Renderer) Zoom(ctx context.Context, px, py float64) (uint64, error) {
	if r.Pending() {
		return 0, ErrRenderInFlight
	}
	next, err := Zoom(r.View(), px, py, r.cfg.Width, r.cfg.Height, r.cfg.Zoom)
	if err != nil {
		return 0, err
	}
	return r.Submit(ctx, next, r.MaxIter())
}

// ResetView submits the configured initial view.
func (r *Renderer) ResetView(ctx context.Context) (uint64, error) {
	return r.Submit(ctx, r.cfg.View, r.MaxIter())
}

// SetMaxIter re-renders the current view with a new budget.
func (r *Renderer) SetMaxIter(ctx context.Context, maxIter int) (uint64, error) {
	return r.Submit(ctx, r.View(), maxIter)
}

func (r *Renderer) startLocked(ctx context.Context, view ViewWindow, maxIter int) uint64 {
	r.generation++
	gen := r.generation
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.pending = true
	r.maxIter = maxIter
	r.cancel = cancel
	r.done = done

	go func() {
		defer close(done)
		defer cancel()
		field, err := RenderParallel(ctx, r.cfg.Width, r.cfg.Height, view, maxIter, r.cfg.Workers)
		r.finish(Result{Generation: gen, View: view, Field: field, Err: err})
	}()
	return gen
}

func (r *Renderer) finish(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.Generation != r.generation {
		return
	}
	r.pending = false
	r.cancel = nil
	if res.Err == nil {
		r.view = res.View
		r.latest = res.Field
	}
	r.result = &res
}

// Poll returns the result of the latest request once it has finished. Each
// result is returned only once.
func (r *Renderer) Poll() (Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.result == nil {
		return Result{}, false
	}
	res := *r.result
	r.result = nil
	return res, true
}

// Wait blocks until the latest request has finished and returns its result.
func (r *Renderer) Wait(ctx context.Context) (Result, error) {
	for {
		r.mu.Lock()
		done := r.done
		gen := r.generation
		r.mu.Unlock()
		if done == nil {
			return Result{}, errors.New("nothing submitted")
		}
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-done:
		}
		r.mu.Lock()
		current := r.generation
		res := r.result
		if current == gen && res != nil {
			r.result = nil
		}
		r.mu.Unlock()
		if current != gen {
			continue
		}
		if res == nil {
			return Result{}, errors.New("result already consumed")
		}
		return *res, nil
	}
}
