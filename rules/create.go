// Package rules holds the game engine. It owns the authoritative game state and
// advances it one tick at a time. Renderers and input handlers never touch the
// state directly, they read copies through State and steer the game through
// SetDirection, TogglePause and Reset.
package rules

import (
	"math/rand"
	"time"

	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	// GridSize is the number of cells along each edge of the board.
	GridSize = 21
	// InitialTickIntervalMs is the tick cadence of a fresh game.
	InitialTickIntervalMs = 120
	// MinTickIntervalMs is the floor the speed-up never goes below.
	MinTickIntervalMs = 60
	// TickIntervalStepMs is how much faster the game gets per speed-up.
	TickIntervalStepMs = 5
	// SpeedUpEvery is the number of food items between speed-ups.
	SpeedUpEvery = 5
)

// ScoreKeeper loads and saves the high score. Implementations deal with their
// own failures: a keeper that cannot load returns 0 and a failed save is
// dropped.
type ScoreKeeper interface {
	LoadHighScore() int
	SaveHighScore(score int)
}

type nopKeeper struct{}

func (nopKeeper) LoadHighScore() int { return 0 }
func (nopKeeper) SaveHighScore(int)  {}

// State is the complete game state. Values returned by Engine.State are deep
// copies and safe to hold on to.
type State struct {
	// Snake is ordered head first.
	Snake            []Point
	Direction        Direction
	PendingDirection Direction
	// Food is nil when there is no food on the board.
	Food           *Point
	Score          int
	HighScore      int
	Paused         bool
	GameOver       bool
	TickIntervalMs int
	LastTickMs     int64
	// Turn counts the ticks that moved the snake since the last reset.
	Turn  int
	Death *Death
}

// Head returns the first segment of the snake.
func (s State) Head() Point {
	return s.Snake[0]
}

func (s State) clone() State {
	c := s
	c.Snake = append([]Point(nil), s.Snake...)
	if s.Food != nil {
		f := *s.Food
		c.Food = &f
	}
	if s.Death != nil {
		d := *s.Death
		c.Death = &d
	}
	return c
}

// Engine runs a single game. It is not safe for concurrent use: the frame loop
// that drives it is the only caller.
type Engine struct {
	// ID identifies the current game, a new one is assigned on every reset.
	ID string

	state    State
	gridSize int
	rand     *rand.Rand
	scores   ScoreKeeper
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used to place food.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rand = r }
}

// WithScoreKeeper sets where the high score is loaded from and saved to.
func WithScoreKeeper(k ScoreKeeper) Option {
	return func(e *Engine) {
		if k != nil {
			e.scores = k
		}
	}
}

// WithGridSize overrides the board size.
func WithGridSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.gridSize = size
		}
	}
}

// New creates an engine with a fresh game. The high score is loaded from the
// score keeper once, and then carried across resets.
func New(opts ...Option) *Engine {
	e := &Engine{
		gridSize: GridSize,
		scores:   nopKeeper{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.state.HighScore = e.scores.LoadHighScore()
	e.Reset()
	return e
}

// Reset starts a new game. Only the high score survives.
func (e *Engine) Reset() {
	center := e.gridSize / 2
	e.ID = uuid.NewV4().String()
	e.state = State{
		Snake:            []Point{{X: center, Y: center}},
		Direction:        Right,
		PendingDirection: Right,
		HighScore:        e.state.HighScore,
		TickIntervalMs:   InitialTickIntervalMs,
		LastTickMs:       e.state.LastTickMs,
	}
	e.state.Food = e.spawnFood()

	log.WithFields(log.Fields{
		"GameID":    e.ID,
		"HighScore": e.state.HighScore,
		"Food":      e.state.Food,
	}).Info("new game")
}

// State returns a copy of the current game state.
func (e *Engine) State() State {
	return e.state.clone()
}

// GridSize returns the number of cells along each edge of the board.
func (e *Engine) GridSize() int {
	return e.gridSize
}
