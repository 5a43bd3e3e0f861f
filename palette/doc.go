// Package palette holds the toggle board: three columns of switches whose
// fixed random offsets are summed into hue, saturation and brightness.
//
// Channel values are recomputed from scratch on every change and are never
// clamped. Offsets are drawn once per toggle from a caller-supplied source.
package palette
