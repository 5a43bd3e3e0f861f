package palette

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrNoSuchToggle is returned when a flip addresses a toggle outside the board
var ErrNoSuchToggle = errors.New("no such toggle")

// Settings is the explicit construction input for a Board
type Settings struct {
	// Toggles is the number of switches per column
	Toggles int
	// BaseHue is the resting hue; nil draws one from the board's random source
	BaseHue        *float64
	BaseSaturation float64
	BaseBrightness float64
	// Overflow holds the per-channel aggregation policy, indexed by Channel
	Overflow [channelCount]OverflowPolicy
	Offset   OffsetPolicy
}

// DefaultSettings mirrors the shipped screen: ten toggles per column, random
// base hue, unwrapped hue and wrapped saturation/brightness
func DefaultSettings() Settings {
	return Settings{
		Toggles:        10,
		BaseSaturation: 0.5,
		BaseBrightness: 0.5,
		Overflow:       [channelCount]OverflowPolicy{OverflowNone, OverflowWrap, OverflowWrap},
		Offset:         OffsetDoubleUntil,
	}
}

// State is the derived color of the board at one point in time
type State struct {
	Hue, Saturation, Brightness float64
}

// Get returns the value of one channel
func (s State) Get(c Channel) float64 {
	switch c {
	case Hue:
		return s.Hue
	case Saturation:
		return s.Saturation
	default:
		return s.Brightness
	}
}

// Color converts the state without normalizing it; out-of-range channels are
// passed to the HSV constructor as they are
func (s State) Color() colorful.Color {
	return colorful.Hsv(s.Hue*360, s.Saturation, s.Brightness)
}

// String formats the diagnostic line emitted after every recompute
func (s State) String() string {
	return fmt.Sprintf("H: %s, S: %s, B: %s", formatValue(s.Hue), formatValue(s.Saturation), formatValue(s.Brightness))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Board owns the three toggle columns and the channel values derived from them.
// It is not safe for concurrent use; callers drive it from a single event loop.
type Board struct {
	bases    [channelCount]float64
	overflow [channelCount]OverflowPolicy
	columns  [channelCount][]Toggle
	state    State

	observers []func(State)
}

// NewBoard builds a board from settings, drawing the base hue (when unset) and
// every toggle offset from rng. A negative toggle count builds empty columns.
func NewBoard(settings Settings, rng *rand.Rand) *Board {
	b := &Board{overflow: settings.Overflow}
	if settings.Toggles < 0 {
		settings.Toggles = 0
	}

	if settings.BaseHue != nil {
		b.bases[Hue] = *settings.BaseHue
	} else {
		b.bases[Hue] = rng.Float64()
	}
	b.bases[Saturation] = settings.BaseSaturation
	b.bases[Brightness] = settings.BaseBrightness

	gen := NewOffsetGenerator(rng, settings.Offset)
	for _, ch := range Channels {
		column := make([]Toggle, settings.Toggles)
		for i := range column {
			column[i] = Toggle{
				Channel: ch,
				Base:    toggleBase(i, settings.Toggles),
				Offset:  gen.Next(),
			}
		}
		b.columns[ch] = column
	}

	b.recompute()
	return b
}

// toggleBase spreads n toggles over [0,1) as 0, 1/n, 2/n...
func toggleBase(i, n int) float64 {
	return math.Round(float64(i)/float64(n)*1e9) / 1e9
}

// OnChange registers fn to be called with the new state after every recompute
func (b *Board) OnChange(fn func(State)) {
	b.observers = append(b.observers, fn)
}

// Base returns the resting value of a channel
func (b *Board) Base(c Channel) float64 {
	return b.bases[c]
}

// State returns the current derived color
func (b *Board) State() State {
	return b.state
}

// Len returns the number of toggles per column
func (b *Board) Len() int {
	return len(b.columns[Hue])
}

// Column returns a copy of one channel's toggles in creation order
func (b *Board) Column(c Channel) []Toggle {
	out := make([]Toggle, len(b.columns[c]))
	copy(out, b.columns[c])
	return out
}

// Toggle returns a single toggle
func (b *Board) Toggle(c Channel, index int) (Toggle, error) {
	if err := b.check(c, index); err != nil {
		return Toggle{}, err
	}
	return b.columns[c][index], nil
}

// Flip inverts one toggle and recomputes every channel
func (b *Board) Flip(c Channel, index int) (State, error) {
	if err := b.check(c, index); err != nil {
		return b.state, err
	}
	b.columns[c][index].On = !b.columns[c][index].On
	b.changed()
	return b.state, nil
}

// Set puts one toggle into the given position and recomputes every channel,
// even when the position did not change
func (b *Board) Set(c Channel, index int, on bool) (State, error) {
	if err := b.check(c, index); err != nil {
		return b.state, err
	}
	b.columns[c][index].On = on
	b.changed()
	return b.state, nil
}

// Reset switches every toggle off
func (b *Board) Reset() State {
	for _, ch := range Channels {
		for i := range b.columns[ch] {
			b.columns[ch][i].On = false
		}
	}
	b.changed()
	return b.state
}

func (b *Board) check(c Channel, index int) error {
	if !c.Valid() || index < 0 || index >= len(b.columns[c]) {
		return fmt.Errorf("%w: %s[%d]", ErrNoSuchToggle, c, index)
	}
	return nil
}

// recompute rebuilds all three channels from scratch
func (b *Board) recompute() {
	b.state = State{
		Hue:        Recompute(b.bases[Hue], b.columns[Hue], b.overflow[Hue]),
		Saturation: Recompute(b.bases[Saturation], b.columns[Saturation], b.overflow[Saturation]),
		Brightness: Recompute(b.bases[Brightness], b.columns[Brightness], b.overflow[Brightness]),
	}
}

func (b *Board) changed() {
	b.recompute()
	for _, fn := range b.observers {
		fn(b.state)
	}
}
