// Package driver runs a step function on a fixed interval without a window.
package driver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gridsim/internal/core"
)

// Config controls the headless loop.
type Config struct {
	Interval time.Duration
	// Steps stops the loop after that many steps; 0 runs until cancelled.
	Steps uint64
	// Paused starts the loop without stepping until Resume or StepOnce.
	Paused bool
}

// Loop calls a step function periodically. Steps run on the loop goroutine,
// one at a time and in order.
type Loop struct {
	cfg Config

	mu       sync.Mutex
	paused   bool
	stepOnce bool
	steps    uint64
}

// New constructs a Loop.
func New(cfg Config) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = core.DefaultStepInterval
	}
	return &Loop{cfg: cfg, paused: cfg.Paused}
}

// Pause stops stepping while keeping the current state.
func (l *Loop) Pause() {
	l.mu.Lock()
	l.paused = true
	l.mu.Unlock()
}

// Resume continues stepping.
func (l *Loop) Resume() {
	l.mu.Lock()
	l.paused = false
	l.mu.Unlock()
}

// Paused reports whether the loop is paused.
func (l *Loop) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paused
}

// StepOnce requests a single step on the next tick even while paused.
func (l *Loop) StepOnce() {
	l.mu.Lock()
	l.stepOnce = true
	l.mu.Unlock()
}

// Steps returns the number of steps performed so far.
func (l *Loop) Steps() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.steps
}

func (l *Loop) shouldStep() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.paused && !l.stepOnce {
		return false
	}
	l.stepOnce = false
	return true
}

// Run blocks, calling step on every tick until ctx is done, step fails, or the
// step budget is spent.
func (l *Loop) Run(ctx context.Context, step func() error) error {
	t := time.NewTicker(l.cfg.Interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if !l.shouldStep() {
				continue
			}
			if err := step(); err != nil {
				return fmt.Errorf("step %d: %w", l.Steps()+1, err)
			}
			l.mu.Lock()
			l.steps++
			done := l.cfg.Steps > 0 && l.steps >= l.cfg.Steps
			l.mu.Unlock()
			if done {
				return nil
			}
		}
	}
}

// RunSim steps sim through a Loop, calling observe after every step when it
// is non-nil.
func RunSim(ctx context.Context, l *Loop, sim core.Sim, observe func(core.Sim) error) error {
	return l.Run(ctx, func() error {
		sim.Step()
		if observe != nil {
			return observe(sim)
		}
		return nil
	})
}
