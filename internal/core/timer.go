package core

import "time"

// DefaultStepInterval is the pause between generations when a sim runs freely.
const DefaultStepInterval = 100 * time.Millisecond

// FixedStep gates simulation updates to a steady interval independent of the
// frame rate of the host loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller firing every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the step interval. Non-positive values fall back to
// DefaultStepInterval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	f.step = interval
}

// Interval returns the configured step interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Reset discards accumulated time, e.g. after the host resumes from pause.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick. At
// most one step is reported per call so steps never pile up.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
