package reveal

import (
	"context"
	"time"
)

// DefaultInterval is the pause between two revealed runes.
const DefaultInterval = 30 * time.Millisecond

var thinkingFrames = [...]string{"•··", "·•·", "··•", "···"}

// ThinkingFrame returns the label with the three-dot bounce frame for step.
func ThinkingFrame(step int) string {
	if step < 0 {
		step = -step
	}
	return ThinkingLabel + " " + thinkingFrames[step%len(thinkingFrames)]
}

// NewTicker returns a tick channel firing every interval and its stop func.
func NewTicker(interval time.Duration) (<-chan time.Time, func()) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// Play drives r from ticks, calling render with what should be on screen
// after every tick. A placeholder loops the thinking animation until ctx is
// done; a real reply returns once fully shown. Play returns ctx.Err() when
// cancelled and nil when ticks is closed.
func Play(ctx context.Context, r *Reveal, ticks <-chan time.Time, render func(string)) error {
	step := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}

			if r.IsPlaceholder() {
				render(ThinkingFrame(step))
				step++
				continue
			}

			prefix, more := r.Next()
			render(prefix)
			if !more {
				return nil
			}
		}
	}
}
