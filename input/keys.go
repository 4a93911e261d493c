package input

import (
	"unicode"

	termbox "github.com/nsf/termbox-go"
)

// FromKey maps a termbox key event. Arrows, WASD and HJKL steer, space pauses,
// r restarts and Esc, Ctrl-C or q quit.
func FromKey(ev termbox.Event) Action {
	if ev.Type != termbox.EventKey {
		return None
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		return Up
	case termbox.KeyArrowDown:
		return Down
	case termbox.KeyArrowLeft:
		return Left
	case termbox.KeyArrowRight:
		return Right
	case termbox.KeySpace:
		return Pause
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return Quit
	}

	switch unicode.ToLower(ev.Ch) {
	case 'w', 'k':
		return Up
	case 's', 'j':
		return Down
	case 'a', 'h':
		return Left
	case 'd', 'l':
		return Right
	case ' ':
		return Pause
	case 'r':
		return Restart
	case 'q':
		return Quit
	}
	return None
}

// Translator maps a stream of termbox events, including mouse drags read as
// swipes. It keeps gesture state between events.
type Translator struct {
	Swipe Swipe

	pressed bool
}

// NewTranslator returns a translator whose swipe threshold is measured in
// terminal cells.
func NewTranslator(cells float64) *Translator {
	return &Translator{Swipe: Swipe{Threshold: cells}}
}

// Translate maps a single event. A drag fires at most one swipe between press
// and release.
func (t *Translator) Translate(ev termbox.Event) Action {
	switch ev.Type {
	case termbox.EventKey:
		return FromKey(ev)
	case termbox.EventMouse:
		x, y := float64(ev.MouseX), float64(ev.MouseY)
		switch ev.Key {
		case termbox.MouseLeft:
			if !t.pressed {
				t.pressed = true
				t.Swipe.Start(x, y)
				return None
			}
			return t.Swipe.Move(x, y)
		case termbox.MouseRelease:
			a := None
			if t.pressed {
				a = t.Swipe.Move(x, y)
			}
			t.pressed = false
			t.Swipe.End()
			return a
		}
	}
	return None
}
