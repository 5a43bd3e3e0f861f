package ui

import "github.com/lixenwraith/switches/palette"

const (
	headerRow   = 1
	firstToggle = 3
	// rows reserved below the toggles for the status line
	footerRows = 2
)

// layout maps toggles to screen cells. Each toggle owns the full column width
// on its row, so a click anywhere on that row flips it.
type layout struct {
	width, height int
	columnWidth   int
	rows          int
	step          int
}

func newLayout(width, height, rows int) layout {
	l := layout{
		width:       width,
		height:      height,
		columnWidth: width / len(palette.Channels),
		rows:        rows,
		step:        1,
	}
	avail := height - firstToggle - footerRows
	if rows > 0 && avail > rows {
		l.step = avail / rows
		if l.step > 3 {
			l.step = 3
		}
	}
	return l
}

// columnX returns the left edge of a channel column
func (l layout) columnX(ch palette.Channel) int {
	return int(ch) * l.columnWidth
}

// rowY returns the screen row of a toggle
func (l layout) rowY(index int) int {
	return firstToggle + index*l.step
}

// visible reports whether a toggle row fits above the status line
func (l layout) visible(index int) bool {
	return l.rowY(index) < l.height-footerRows
}

// statusY is the row holding the diagnostic line
func (l layout) statusY() int {
	return l.height - 1
}

// hit resolves a screen cell to a toggle
func (l layout) hit(x, y int) (palette.Channel, int, bool) {
	if l.columnWidth <= 0 || x < 0 || y < firstToggle {
		return 0, 0, false
	}
	col := x / l.columnWidth
	if col >= len(palette.Channels) {
		return 0, 0, false
	}
	offset := y - firstToggle
	if offset%l.step != 0 {
		return 0, 0, false
	}
	index := offset / l.step
	if index >= l.rows || !l.visible(index) {
		return 0, 0, false
	}
	return palette.Channels[col], index, true
}
