package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Toggle is one switch in a channel column
type Toggle struct {
	Channel Channel
	// Base is the channel value the toggle stands for, used for its swatch
	Base float64
	// Offset is fixed at creation and added to the channel while On
	Offset float64
	On     bool
}

// Swatch is the toggle's own tint, independent of the board state
func (t Toggle) Swatch() colorful.Color {
	switch t.Channel {
	case Hue:
		return colorful.Hsv(t.Base*360, 0.5, 0.5)
	case Saturation:
		return colorful.Hsv(0, t.Base, 0.5)
	default:
		return colorful.Hsv(0, 0, t.Base)
	}
}
