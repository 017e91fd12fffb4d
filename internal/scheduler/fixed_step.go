// Package scheduler paces the simulation at a fixed tick rate.
package scheduler

import (
	"context"
	"time"
)

// FixedStep runs one step per frame and idles away the unused part of the
// frame budget. A slow step is not compensated: the game slows down instead of
// integrating a larger delta.
type FixedStep struct {
	frame time.Duration
	clock Clock
	ticks uint64
}

func NewFixedStep(frame time.Duration, clock Clock) *FixedStep {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FixedStep{frame: frame, clock: clock}
}

// Run calls step once per frame until step returns false or ctx is done.
// Cancellation is only observed between steps.
func (f *FixedStep) Run(ctx context.Context, step func() bool) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := f.clock.Now()
		more := step()
		f.ticks++
		if !more {
			return nil
		}
		if spare := f.frame - f.clock.Now().Sub(start); spare > 0 {
			f.clock.Sleep(spare)
		}
	}
}

// Ticks is the number of steps run so far.
func (f *FixedStep) Ticks() uint64 { return f.ticks }
