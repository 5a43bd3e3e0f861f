package palette

import (
	"math"
	"math/rand"
)

const (
	// MinOffset is the smallest magnitude a generated offset may have
	MinOffset = 0.05
	// MaxOffset bounds the uniform draw to [-MaxOffset, MaxOffset]
	MaxOffset = 0.5

	// doublingGuard caps repeated doubling; 0.05 is reached from 1e-19 well within it
	doublingGuard = 64
)

// OffsetPolicy selects how a draw that is too close to zero gets pushed out
type OffsetPolicy int

const (
	// OffsetDoubleUntil keeps doubling until the magnitude reaches MinOffset
	OffsetDoubleUntil OffsetPolicy = iota
	// OffsetDoubleOnce doubles a small draw a single time, which can leave it below MinOffset
	OffsetDoubleOnce
)

func (p OffsetPolicy) String() string {
	switch p {
	case OffsetDoubleUntil:
		return "until"
	case OffsetDoubleOnce:
		return "once"
	}
	return "unknown"
}

// ParseOffsetPolicy maps a config name to an OffsetPolicy
func ParseOffsetPolicy(s string) (OffsetPolicy, bool) {
	switch s {
	case "until", "":
		return OffsetDoubleUntil, true
	case "once":
		return OffsetDoubleOnce, true
	}
	return 0, false
}

// OffsetGenerator draws toggle offsets from an explicit random source
type OffsetGenerator struct {
	rng    *rand.Rand
	policy OffsetPolicy
}

// NewOffsetGenerator creates a generator; rng must not be shared across goroutines
func NewOffsetGenerator(rng *rand.Rand, policy OffsetPolicy) *OffsetGenerator {
	return &OffsetGenerator{rng: rng, policy: policy}
}

// Next returns a fresh offset in [-MaxOffset, MaxOffset]
func (g *OffsetGenerator) Next() float64 {
	return adjustOffset(g.rng.Float64()*2*MaxOffset-MaxOffset, g.policy)
}

func adjustOffset(v float64, policy OffsetPolicy) float64 {
	if math.Abs(v) >= MinOffset {
		return v
	}

	if policy == OffsetDoubleOnce {
		return v * 2
	}

	for i := 0; i < doublingGuard && v != 0 && math.Abs(v) < MinOffset; i++ {
		v *= 2
	}
	if math.Abs(v) < MinOffset {
		// Zero never grows; subnormal draws may outlast the guard
		if math.Signbit(v) {
			return -MinOffset
		}
		return MinOffset
	}
	return v
}
