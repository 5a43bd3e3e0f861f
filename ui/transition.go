package ui

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// transition blends the background from one color to another over a fixed duration
type transition struct {
	from, to colorful.Color
	start    time.Time
	duration time.Duration
}

func newTransition(from, to colorful.Color, start time.Time, duration time.Duration) *transition {
	return &transition{from: from, to: to, start: start, duration: duration}
}

// at returns the blended color at now and whether the transition has finished
func (t *transition) at(now time.Time) (colorful.Color, bool) {
	elapsed := now.Sub(t.start)
	if t.duration <= 0 || elapsed >= t.duration {
		return t.to, true
	}
	if elapsed <= 0 {
		return t.from, false
	}
	completion := elapsed.Seconds() / t.duration.Seconds()
	return t.from.BlendLuv(t.to, completion).Clamped(), false
}
