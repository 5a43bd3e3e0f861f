// Package ui renders the toggle board in a terminal and routes taps to it.
package ui

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/switches/palette"
)

// ~60 FPS while a transition is running
const frameInterval = 16 * time.Millisecond

// Feedback is fired on user actions; audio.SoundManager satisfies it
type Feedback interface {
	PlayTap()
	PlayReset()
}

// Options tune the screen
type Options struct {
	// Transition is the background blend duration; zero switches instantly
	Transition time.Duration
	// Clock defaults to SystemClock
	Clock Clock
}

// App owns the screen loop. All board mutation happens on the goroutine running Run.
type App struct {
	screen   tcell.Screen
	board    *palette.Board
	feedback Feedback
	clock    Clock
	duration time.Duration

	layout layout

	focusChannel palette.Channel
	focusIndex   int
	mouseDown    bool

	shown colorful.Color
	fade  *transition
}

// New creates an App over an initialized screen
func New(screen tcell.Screen, board *palette.Board, feedback Feedback, opts Options) *App {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	a := &App{
		screen:   screen,
		board:    board,
		feedback: feedback,
		clock:    clock,
		duration: opts.Transition,
		shown:    board.State().Color().Clamped(),
	}

	w, h := screen.Size()
	a.layout = newLayout(w, h, board.Len())

	board.OnChange(a.retarget)
	return a
}

// retarget starts a blend from whatever is on screen to the new state's color
func (a *App) retarget(s palette.State) {
	now := a.clock.Now()
	a.shown = a.background()
	a.fade = newTransition(a.shown, s.Color().Clamped(), now, a.duration)
}

// background returns the color to paint now, finishing the transition when due
func (a *App) background() colorful.Color {
	if a.fade == nil {
		return a.shown
	}
	c, done := a.fade.at(a.clock.Now())
	if done {
		a.shown = c
		a.fade = nil
	}
	return c
}

// Animating reports whether a background transition is in progress
func (a *App) Animating() bool {
	return a.fade != nil
}

// Run processes events until quit or ctx is cancelled.
// The caller owns the screen and must Fini it to release the poller.
func (a *App) Run(ctx context.Context) error {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}
			a.Draw()

		case <-ticker.C:
			if a.Animating() {
				a.Draw()
			}
		}
	}
}

// HandleEvent applies one event; it returns false when the user asked to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.screen.Sync()
		w, h := ev.Size()
		a.layout = newLayout(w, h, a.board.Len())
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		a.moveFocus(-1, 0)
	case tcell.KeyRight:
		a.moveFocus(1, 0)
	case tcell.KeyUp:
		a.moveFocus(0, -1)
	case tcell.KeyDown:
		a.moveFocus(0, 1)
	case tcell.KeyEnter:
		a.Tap(a.focusChannel, a.focusIndex)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			a.moveFocus(-1, 0)
		case 'l':
			a.moveFocus(1, 0)
		case 'k':
			a.moveFocus(0, -1)
		case 'j':
			a.moveFocus(0, 1)
		case ' ':
			a.Tap(a.focusChannel, a.focusIndex)
		case 'r':
			a.feedback.PlayReset()
			a.board.Reset()
		}
	}
	return true
}

// handleMouse flips on the press edge only, so holding or dragging does not repeat
func (a *App) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && !a.mouseDown {
		x, y := ev.Position()
		if ch, index, ok := a.layout.hit(x, y); ok {
			a.focusChannel, a.focusIndex = ch, index
			a.Tap(ch, index)
		}
	}
	a.mouseDown = pressed
}

func (a *App) moveFocus(dx, dy int) {
	n := len(palette.Channels)
	a.focusChannel = palette.Channel((int(a.focusChannel) + dx + n) % n)

	rows := a.board.Len()
	if rows == 0 {
		return
	}
	a.focusIndex = (a.focusIndex + dy + rows) % rows
}

// Tap fires feedback and flips one toggle; the board recomputes every channel
func (a *App) Tap(ch palette.Channel, index int) error {
	if _, err := a.board.Flip(ch, index); err != nil {
		log.Printf("Tap ignored: %v", err)
		return err
	}
	a.feedback.PlayTap()
	return nil
}
