// Package loop drives a game. It polls at a fixed frame rate, applies buffered
// input, lets the engine decide when a tick is due and redraws every frame.
package loop

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/rules"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
)

// DefaultFrameInterval is roughly one display refresh.
const DefaultFrameInterval = 16 * time.Millisecond

// Loop owns the engine for the lifetime of Run. Nothing else may call into the
// engine while the loop is running, input arrives on Actions instead.
type Loop struct {
	Engine        *rules.Engine
	Draw          func(rules.State) error
	Actions       <-chan input.Action
	FrameInterval time.Duration
	Clock         func() time.Time

	start time.Time
}

// Run runs frames until ctx is done or a Quit action arrives. A Quit, or a
// closed action channel, ends the loop without error.
func (l *Loop) Run(ctx context.Context) error {
	if l.Clock == nil {
		l.Clock = time.Now
	}
	if l.FrameInterval <= 0 {
		l.FrameInterval = DefaultFrameInterval
	}
	l.start = l.Clock()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		start := l.Clock()

		done, err := l.Frame(l.nowMs(start))
		if err != nil || done {
			return err
		}

		remainingDelay := l.FrameInterval - l.Clock().Sub(start)
		if remainingDelay > 0 {
			select {
			case <-time.After(remainingDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (l *Loop) nowMs(t time.Time) int64 {
	return int64(t.Sub(l.start) / time.Millisecond)
}

// Frame runs a single frame at nowMs, measured on the same clock for every
// call. It reports whether the player asked to quit.
func (l *Loop) Frame(nowMs int64) (bool, error) {
	frames.Inc()

	if quit := l.drain(); quit {
		return true, nil
	}

	before := l.Engine.State()
	if l.Engine.Advance(nowMs) {
		l.observe(before, l.Engine.State())
	}

	if l.Draw == nil {
		return false, nil
	}
	return false, l.Draw(l.Engine.State())
}

// drain applies every action queued since the last frame without blocking.
func (l *Loop) drain() bool {
	for {
		select {
		case a, ok := <-l.Actions:
			if !ok {
				return true
			}
			if !input.Apply(l.Engine, a) {
				log.WithField("GameID", l.Engine.ID).Info("quit")
				return true
			}
		default:
			return false
		}
	}
}

func (l *Loop) observe(before, after rules.State) {
	if before.Paused || before.GameOver {
		return
	}
	ticks.Inc()
	if after.Score > before.Score {
		foodEaten.Inc()
	}
	if after.GameOver {
		gamesOver.Inc()
		log.WithFields(log.Fields{
			"GameID": l.Engine.ID,
			"Turn":   after.Turn,
		}).Debugf("final state\n%s", spew.Sdump(after))
	}
}
