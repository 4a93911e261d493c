package rules

import (
	"math/rand"
)

type recordingKeeper struct {
	loaded int
	saves  []int
}

func (k *recordingKeeper) LoadHighScore() int { return k.loaded }

func (k *recordingKeeper) SaveHighScore(score int) { k.saves = append(k.saves, score) }

// engineWith builds an engine and swaps in the given state. A zero tick
// interval or pending direction is filled in from the defaults.
func engineWith(s State, opts ...Option) *Engine {
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	e := New(opts...)
	if s.TickIntervalMs == 0 {
		s.TickIntervalMs = InitialTickIntervalMs
	}
	if s.PendingDirection == (Direction{}) {
		s.PendingDirection = s.Direction
	}
	e.state = s
	return e
}

func pt(x, y int) *Point {
	return &Point{X: x, Y: y}
}
