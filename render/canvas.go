package render

import (
	termbox "github.com/nsf/termbox-go"
)

// Canvas is a grid of terminal cells.
type Canvas interface {
	Clear(fg, bg termbox.Attribute) error
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	Size() (int, int)
	Flush() error
}

type termboxCanvas struct{}

// Termbox draws straight to the terminal. termbox.Init must have been called.
func Termbox() Canvas { return termboxCanvas{} }

func (termboxCanvas) Clear(fg, bg termbox.Attribute) error { return termbox.Clear(fg, bg) }
func (termboxCanvas) Size() (int, int)                      { return termbox.Size() }
func (termboxCanvas) Flush() error                          { return termbox.Flush() }

func (termboxCanvas) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}
