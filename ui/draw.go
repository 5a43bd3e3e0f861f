package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/switches/palette"
)

const (
	glyphOff = "○━━"
	glyphOn  = "━━●"
)

var headers = [...]string{"HUE", "SATURATION", "BRIGHTNESS"}

// toTcell converts a color for the terminal, clamping out-of-gamut components
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// contrast picks black or white text for a background
func contrast(bg colorful.Color) tcell.Color {
	l, _, _ := bg.Clamped().Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}

// drawText writes s starting at x, advancing by display width, and returns the next column
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes text centered within [x, x+width)
func drawCentered(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	text = runewidth.Truncate(text, width, "…")
	pad := (width - runewidth.StringWidth(text)) / 2
	drawText(s, x+pad, y, x+width, text, style)
}

// Draw renders the whole screen from the board and the current background
func (a *App) Draw() {
	bg := a.background()
	base := tcell.StyleDefault.Background(toTcell(bg)).Foreground(contrast(bg))

	// Fill with the styled blank so a color change marks every cell dirty
	a.screen.SetStyle(base)
	a.screen.Fill(' ', base)

	for _, ch := range palette.Channels {
		x := a.layout.columnX(ch)
		drawCentered(a.screen, x, headerRow, a.layout.columnWidth, headers[ch], base.Bold(true))

		for i, tg := range a.board.Column(ch) {
			if !a.layout.visible(i) {
				break
			}
			a.drawToggle(tg, x, a.layout.rowY(i), base, ch == a.focusChannel && i == a.focusIndex)
		}
	}

	status := a.board.State().String()
	drawCentered(a.screen, 0, a.layout.statusY(), a.layout.width, status, base)

	a.screen.Show()
}

func (a *App) drawToggle(tg palette.Toggle, x, y int, base tcell.Style, focused bool) {
	glyph := glyphOff
	style := base.Foreground(tcell.ColorGray)
	if tg.On {
		glyph = glyphOn
		style = base.Foreground(toTcell(tg.Swatch()))
	}
	if focused {
		style = style.Reverse(true)
	}

	width := runewidth.StringWidth(glyph)
	pad := (a.layout.columnWidth - width) / 2
	if pad < 0 {
		pad = 0
	}
	drawText(a.screen, x+pad, y, x+a.layout.columnWidth, glyph, style)
}
