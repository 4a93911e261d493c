// Package render draws the game state on a terminal.
package render

import (
	"errors"
	"fmt"

	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	headColor    = termbox.ColorYellow
	bodyColor    = termbox.ColorGreen
	foodColor    = termbox.ColorRed
	overlayColor = termbox.ColorWhite | termbox.AttrBold

	// cellWidth columns per board cell keep the board roughly square.
	cellWidth = 2
)

const (
	// PausedText is shown over a paused game.
	PausedText = "Paused"
	// GameOverText is shown over a finished game.
	GameOverText = "Game Over - press r to restart"
)

// Board draws a rules.State of a fixed size board.
type Board struct {
	Canvas   Canvas
	GridSize int
}

// NewBoard returns a board drawing on c.
func NewBoard(c Canvas, gridSize int) *Board {
	return &Board{Canvas: c, GridSize: gridSize}
}

// Draw redraws the whole screen.
func (b *Board) Draw(s rules.State) error {
	if len(s.Snake) == 0 {
		return errors.New("render: received state without a snake")
	}
	if err := b.Canvas.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	w, h := b.Canvas.Size()
	var (
		boardW = b.GridSize * cellWidth
		left   = max(1, (w-boardW)/2)
		top    = max(2, (h-b.GridSize)/2)
	)

	b.renderTitle(left, top, s)
	b.renderBoard(left, top)
	b.renderFood(left, top, s.Food)
	b.renderSnake(left, top, s.Snake)
	b.renderOverlay(left, top, s)

	return b.Canvas.Flush()
}

func (b *Board) cell(left, top int, p rules.Point, ch rune, fg, bg termbox.Attribute) {
	x := left + p.X*cellWidth
	y := top + 1 + p.Y
	for i := 0; i < cellWidth; i++ {
		b.Canvas.SetCell(x+i, y, ch, fg, bg)
	}
}

// renderSnake draws tail to head so the head always ends up on top.
func (b *Board) renderSnake(left, top int, body []rules.Point) {
	for i := len(body) - 1; i >= 0; i-- {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		b.cell(left, top, body[i], ' ', color, color)
	}
}

func (b *Board) renderFood(left, top int, food *rules.Point) {
	if food == nil {
		return
	}
	x := left + food.X*cellWidth
	y := top + 1 + food.Y
	b.Canvas.SetCell(x, y, '●', foodColor, bgColor)
}

func (b *Board) renderBoard(left, top int) {
	var (
		right  = left + b.GridSize*cellWidth
		bottom = top + b.GridSize + 1
	)
	for i := top + 1; i < bottom; i++ {
		b.Canvas.SetCell(left-1, i, '│', defaultColor, bgColor)
		b.Canvas.SetCell(right, i, '│', defaultColor, bgColor)
	}

	b.Canvas.SetCell(left-1, top, '┌', defaultColor, bgColor)
	b.Canvas.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	b.Canvas.SetCell(right, top, '┐', defaultColor, bgColor)
	b.Canvas.SetCell(right, bottom, '┘', defaultColor, bgColor)

	b.fill(left, top, right-left, 1, termbox.Cell{Ch: '─'})
	b.fill(left, bottom, right-left, 1, termbox.Cell{Ch: '─'})
}

func (b *Board) renderTitle(left, top int, s rules.State) {
	b.tbprint(left-1, top-1, defaultColor, defaultColor,
		fmt.Sprintf("Score: %d  High: %d", s.Score, s.HighScore))
}

func (b *Board) renderOverlay(left, top int, s rules.State) {
	var text string
	switch {
	case s.GameOver:
		text = GameOverText
	case s.Paused:
		text = PausedText
	default:
		return
	}
	boardW := b.GridSize * cellWidth
	x := left + (boardW-runewidth.StringWidth(text))/2
	y := top + 1 + b.GridSize/2
	b.tbprint(max(0, x), y, overlayColor, termbox.ColorBlack, text)
}

func (b *Board) fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			b.Canvas.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func (b *Board) tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		b.Canvas.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
