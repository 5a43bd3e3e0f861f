package palette

// OverflowPolicy decides what happens when adding an offset would leave [0,1]
type OverflowPolicy int

const (
	// OverflowWrap shifts the running value by 0.5 toward the middle before adding.
	// The result can still fall outside [0,1].
	OverflowWrap OverflowPolicy = iota
	// OverflowNone adds offsets unconditionally
	OverflowNone
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowWrap:
		return "wrap"
	case OverflowNone:
		return "none"
	}
	return "unknown"
}

// ParseOverflowPolicy maps a config name to an OverflowPolicy
func ParseOverflowPolicy(s string) (OverflowPolicy, bool) {
	switch s {
	case "wrap":
		return OverflowWrap, true
	case "none":
		return OverflowNone, true
	}
	return 0, false
}

// Recompute derives a channel value from its base and every switched-on toggle,
// visited in creation order. No clamping is applied to the result.
func Recompute(base float64, toggles []Toggle, policy OverflowPolicy) float64 {
	value := base
	for _, t := range toggles {
		if !t.On {
			continue
		}
		if policy == OverflowWrap {
			if value+t.Offset > 1 {
				value -= 0.5
			} else if value+t.Offset < 0 {
				value += 0.5
			}
		}
		value += t.Offset
	}
	return value
}
