package loop

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/rules"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func newEngine() *rules.Engine {
	return rules.New(rules.WithRand(rand.New(rand.NewSource(1))))
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

// fakeClock moves forward by step every time it is read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestFrameGatesTicks(t *testing.T) {
	e := newEngine()
	l := &Loop{Engine: e}

	before := counterValue(t, ticks)
	for _, now := range []int64{0, 50, 119} {
		done, err := l.Frame(now)
		require.NoError(t, err)
		require.False(t, done)
		require.Equal(t, rules.Point{X: 10, Y: 10}, e.State().Head())
	}

	_, err := l.Frame(120)
	require.NoError(t, err)
	require.Equal(t, rules.Point{X: 11, Y: 10}, e.State().Head())
	require.Equal(t, before+1, counterValue(t, ticks))
}

func TestFrameAppliesQueuedActions(t *testing.T) {
	e := newEngine()
	actions := make(chan input.Action, 4)
	actions <- input.Up
	actions <- input.Pause
	actions <- input.Pause
	l := &Loop{Engine: e, Actions: actions}

	_, err := l.Frame(120)
	require.NoError(t, err)
	require.Equal(t, rules.Point{X: 10, Y: 9}, e.State().Head())
	require.Len(t, actions, 0)
}

func TestFramePausedDoesNotCountTicks(t *testing.T) {
	e := newEngine()
	e.TogglePause()
	l := &Loop{Engine: e}

	before := counterValue(t, ticks)
	_, err := l.Frame(500)
	require.NoError(t, err)
	require.Equal(t, before, counterValue(t, ticks))
	require.Equal(t, int64(500), e.State().LastTickMs)
}

func TestFrameQuit(t *testing.T) {
	actions := make(chan input.Action, 1)
	actions <- input.Quit
	done, err := (&Loop{Engine: newEngine(), Actions: actions}).Frame(0)
	require.NoError(t, err)
	require.True(t, done)

	closed := make(chan input.Action)
	close(closed)
	done, err = (&Loop{Engine: newEngine(), Actions: closed}).Frame(0)
	require.NoError(t, err)
	require.True(t, done)
}

func TestFrameDrawsEveryFrame(t *testing.T) {
	var drawn []rules.State
	l := &Loop{
		Engine: newEngine(),
		Draw: func(s rules.State) error {
			drawn = append(drawn, s)
			return nil
		},
	}
	for now := int64(0); now < 100; now += 16 {
		_, err := l.Frame(now)
		require.NoError(t, err)
	}
	require.Len(t, drawn, 7)
	require.Equal(t, 0, drawn[6].Turn)
}

func TestFrameDrawError(t *testing.T) {
	boom := errors.New("boom")
	l := &Loop{
		Engine: newEngine(),
		Draw:   func(rules.State) error { return boom },
	}
	_, err := l.Frame(0)
	require.Equal(t, boom, err)
}

func TestRunFakeClock(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0), step: 20 * time.Millisecond}
	stop := errors.New("stop")
	draws := 0
	var last rules.State
	l := &Loop{
		Engine:        newEngine(),
		FrameInterval: 10 * time.Millisecond,
		Clock:         clock.Now,
		Draw: func(s rules.State) error {
			draws++
			last = s
			if draws == 10 {
				return stop
			}
			return nil
		},
	}

	before := counterValue(t, frames)
	err := l.Run(context.Background())
	require.Equal(t, stop, err)
	// frames start at 20ms, 60ms, ..., 380ms; ticks fire at 140, 260 and 380
	require.Equal(t, 3, last.Turn)
	require.Equal(t, before+10, counterValue(t, frames))
}

func TestRunQuit(t *testing.T) {
	actions := make(chan input.Action, 1)
	l := &Loop{Engine: newEngine(), Actions: actions, FrameInterval: time.Millisecond}
	actions <- input.Quit
	require.NoError(t, l.Run(context.Background()))
}

func TestRunCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	l := &Loop{Engine: newEngine()}
	require.Equal(t, context.DeadlineExceeded, l.Run(ctx))
}
