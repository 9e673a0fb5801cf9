package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped before the interval elapsed")
	}
	clock.advance(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after 110ms")
	}
	if fs.ShouldStep() {
		t.Fatal("expected no second step without elapsed time")
	}
}

func TestFixedStepDoesNotBurst(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = clock.now
	fs.Reset()

	fs.ShouldStep()
	clock.advance(time.Second)
	steps := 0
	for i := 0; i < 20; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps > 2 {
		t.Fatalf("a long stall produced %d catch-up steps, want at most 2", steps)
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultStepInterval {
		t.Fatalf("Interval() = %v, want %v", fs.Interval(), DefaultStepInterval)
	}
}
