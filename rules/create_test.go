package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInitialState(t *testing.T) {
	e := New(WithRand(rand.New(rand.NewSource(42))))
	s := e.State()
	require.Equal(t, []Point{{X: 10, Y: 10}}, s.Snake)
	require.Equal(t, Right, s.Direction)
	require.Equal(t, Right, s.PendingDirection)
	require.NotNil(t, s.Food)
	require.False(t, occupied(*s.Food, s.Snake))
	require.Zero(t, s.Score)
	require.Zero(t, s.HighScore)
	require.False(t, s.Paused)
	require.False(t, s.GameOver)
	require.Nil(t, s.Death)
	require.Equal(t, 120, s.TickIntervalMs)
	require.Equal(t, GameStatusRunning, e.Status())
	require.NotEmpty(t, e.ID)
}

func TestNewLoadsHighScore(t *testing.T) {
	e := New(WithScoreKeeper(&recordingKeeper{loaded: 9}))
	require.Equal(t, 9, e.State().HighScore)
}

func TestNewNilKeeperLoadsZero(t *testing.T) {
	e := New(WithScoreKeeper(nil))
	require.Zero(t, e.State().HighScore)
	e.state.Snake = loopedSnake()
	e.state.Direction = Down
	e.state.PendingDirection = Down
	e.state.Score = 4
	e.Tick()
	require.True(t, e.State().GameOver)
	require.Equal(t, 4, e.State().HighScore)
}

func TestResetAfterGameOverPreservesHighScore(t *testing.T) {
	e := engineWith(State{
		Snake:          loopedSnake(),
		Direction:      Right,
		Score:          7,
		HighScore:      7,
		GameOver:       true,
		Paused:         true,
		TickIntervalMs: 80,
		Death:          &Death{Turn: 3, Cause: DeathCauseSnakeSelfCollision},
	})
	id := e.ID
	e.Reset()
	s := e.State()
	require.False(t, s.GameOver)
	require.False(t, s.Paused)
	require.Zero(t, s.Score)
	require.Zero(t, s.Turn)
	require.Nil(t, s.Death)
	require.Equal(t, 7, s.HighScore)
	require.Equal(t, InitialTickIntervalMs, s.TickIntervalMs)
	require.Equal(t, []Point{{X: 10, Y: 10}}, s.Snake)
	require.Equal(t, Right, s.Direction)
	require.NotEqual(t, id, e.ID)
}

func TestStateIsACopy(t *testing.T) {
	e := engineWith(State{
		Snake:     []Point{{X: 5, Y: 5}},
		Direction: Right,
		Food:      pt(1, 1),
	})
	s := e.State()
	s.Snake[0] = Point{X: 0, Y: 0}
	s.Food.X = 9
	require.Equal(t, Point{X: 5, Y: 5}, e.state.Head())
	require.Equal(t, pt(1, 1), e.state.Food)
}
