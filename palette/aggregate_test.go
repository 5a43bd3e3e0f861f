package palette

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRecomputeAllOffReturnsBase(t *testing.T) {
	toggles := []Toggle{
		{Offset: 0.4},
		{Offset: -0.3},
		{Offset: 0.07},
	}
	for _, policy := range []OverflowPolicy{OverflowWrap, OverflowNone} {
		for _, base := range []float64{0, 0.3, 0.5, 1} {
			if got := Recompute(base, toggles, policy); got != base {
				t.Errorf("%s: base %v with all toggles off, got %v", policy, base, got)
			}
		}
	}
}

func TestRecomputeEmptyList(t *testing.T) {
	if got := Recompute(0.42, nil, OverflowWrap); got != 0.42 {
		t.Errorf("Expected 0.42 for empty list, got %v", got)
	}
}

func TestRecomputeSingleToggle(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		offset float64
		policy OverflowPolicy
		want   float64
	}{
		{"none in range", 0.5, 0.2, OverflowNone, 0.7},
		{"none above one", 0.9, 0.3, OverflowNone, 1.2},
		{"none below zero", 0.1, -0.3, OverflowNone, -0.2},
		{"wrap in range", 0.5, 0.2, OverflowWrap, 0.7},
		{"wrap above one", 0.9, 0.3, OverflowWrap, 0.7},
		{"wrap below zero", 0.1, -0.3, OverflowWrap, 0.3},
		{"wrap exactly one", 0.6, 0.4, OverflowWrap, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toggles := []Toggle{
				{Offset: -0.45},
				{Offset: tt.offset, On: true},
				{Offset: 0.33},
			}
			got := Recompute(tt.base, toggles, tt.policy)
			if !approx(got, tt.want) {
				t.Errorf("Recompute(%v, offset %v) = %v, want %v", tt.base, tt.offset, got, tt.want)
			}
		})
	}
}

func TestRecomputeWrapCanStillOverflow(t *testing.T) {
	// 0.95 -> 0.45 -> 0.9, then 0.9+0.45 overflows again -> 0.4 -> 0.85
	toggles := []Toggle{{Offset: 0.45, On: true}, {Offset: 0.45, On: true}}
	if got := Recompute(0.95, toggles, OverflowWrap); !approx(got, 0.85) {
		t.Errorf("Expected 0.85, got %v", got)
	}

	// A single shift is not enough to bring a large running total back
	toggles = []Toggle{{Offset: 0.5, On: true}}
	if got := Recompute(1.6, toggles, OverflowWrap); !approx(got, 1.6) {
		t.Errorf("Expected wrapped value to stay out of range at 1.6, got %v", got)
	}
}

func TestRecomputeWrapIsOrderDependent(t *testing.T) {
	a := Toggle{Offset: 0.4, On: true}
	b := Toggle{Offset: -0.3, On: true}
	base := 0.7

	// a first: 0.7+0.4 > 1 -> 0.2+0.4 = 0.6, then 0.6-0.3 = 0.3
	forward := Recompute(base, []Toggle{a, b}, OverflowWrap)
	// b first: 0.4, then 0.4+0.4 = 0.8
	reverse := Recompute(base, []Toggle{b, a}, OverflowWrap)

	if !approx(forward, 0.3) {
		t.Errorf("Forward order: expected 0.3, got %v", forward)
	}
	if !approx(reverse, 0.8) {
		t.Errorf("Reverse order: expected 0.8, got %v", reverse)
	}

	// Without wrapping the sum is commutative
	fn := Recompute(base, []Toggle{a, b}, OverflowNone)
	rn := Recompute(base, []Toggle{b, a}, OverflowNone)
	if !approx(fn, rn) || !approx(fn, 0.8) {
		t.Errorf("Unwrapped sums should match at 0.8, got %v and %v", fn, rn)
	}
}

func TestRecomputeHueScenario(t *testing.T) {
	toggles := []Toggle{
		{Channel: Hue, Offset: 0.4},
		{Channel: Hue, Offset: -0.1, On: true},
	}
	if got := Recompute(0.3, toggles, OverflowNone); !approx(got, 0.2) {
		t.Errorf("Expected hue 0.2, got %v", got)
	}
}

func TestParseOverflowPolicy(t *testing.T) {
	for _, p := range []OverflowPolicy{OverflowWrap, OverflowNone} {
		got, ok := ParseOverflowPolicy(p.String())
		if !ok || got != p {
			t.Errorf("ParseOverflowPolicy(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := ParseOverflowPolicy("clamp"); ok {
		t.Error("Expected unknown policy to be rejected")
	}
}
