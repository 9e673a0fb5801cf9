package driver

import (
	"context"
	"errors"
	"testing"
	"time"

	"gridsim/internal/core"
	"gridsim/internal/sims/life"
)

func TestRunStopsAfterBudget(t *testing.T) {
	l := New(Config{Interval: time.Millisecond, Steps: 5})
	calls := 0
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := l.Run(ctx, func() error { calls++; return nil }); err != nil {
		t.Fatal(err)
	}
	if calls != 5 || l.Steps() != 5 {
		t.Fatalf("calls=%d steps=%d, want 5", calls, l.Steps())
	}
}

func TestPausedLoopDoesNotStep(t *testing.T) {
	l := New(Config{Interval: time.Millisecond, Paused: true})
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	calls := 0
	err := l.Run(ctx, func() error { calls++; return nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if calls != 0 {
		t.Fatalf("paused loop stepped %d times", calls)
	}
}

func TestPauseAndResume(t *testing.T) {
	l := New(Config{Interval: time.Millisecond, Steps: 4})
	calls := 0
	step := func() error {
		calls++
		if calls == 2 {
			l.Pause()
		}
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := l.Run(ctx, step); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if calls != 2 || !l.Paused() {
		t.Fatalf("calls=%d paused=%v, want 2 and paused", calls, l.Paused())
	}

	l.Resume()
	ctx2, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	if err := l.Run(ctx2, step); err != nil {
		t.Fatal(err)
	}
	if calls != 4 || l.Steps() != 4 {
		t.Fatalf("calls=%d steps=%d, want 4", calls, l.Steps())
	}
}

func TestStepOnceWhilePaused(t *testing.T) {
	l := New(Config{Interval: time.Millisecond, Steps: 1, Paused: true})
	l.StepOnce()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := l.Run(ctx, func() error { return nil }); err != nil {
		t.Fatal(err)
	}
	if !l.Paused() {
		t.Fatal("StepOnce must not resume the loop")
	}
}

func TestStepErrorStopsLoop(t *testing.T) {
	l := New(Config{Interval: time.Millisecond})
	boom := errors.New("boom")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := l.Run(ctx, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestRunSimAdvancesGenerations(t *testing.T) {
	sim := life.New(life.Config{Rows: 5, Cols: 5})
	sim.Toggle(1, 2)
	sim.Toggle(2, 2)
	sim.Toggle(3, 2)
	start := sim.Grid().Clone()

	l := New(Config{Interval: time.Millisecond, Steps: 2})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	seen := 0
	err := RunSim(ctx, l, sim, func(core.Sim) error { seen++; return nil })
	if err != nil {
		t.Fatal(err)
	}
	if seen != 2 || sim.Generation() != 2 {
		t.Fatalf("seen=%d generation=%d", seen, sim.Generation())
	}
	if !sim.Grid().Equal(start) {
		t.Fatal("blinker should be back in its starting phase after two steps")
	}
}

func TestDefaultInterval(t *testing.T) {
	if l := New(Config{}); l.cfg.Interval != core.DefaultStepInterval {
		t.Fatalf("interval = %v", l.cfg.Interval)
	}
}
