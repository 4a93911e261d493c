package rules

import (
	log "github.com/sirupsen/logrus"
)

// Advance runs a tick if at least TickIntervalMs have passed since the last
// one. nowMs is any monotonic millisecond clock. The last tick time moves
// forward even while paused so resuming does not fire a burst of ticks.
func (e *Engine) Advance(nowMs int64) bool {
	if nowMs-e.state.LastTickMs < int64(e.state.TickIntervalMs) {
		return false
	}
	e.Tick()
	e.state.LastTickMs = nowMs
	return true
}

// Tick runs the game one step and updates the state
func (e *Engine) Tick() {
	if e.state.Paused || e.state.GameOver {
		return
	}

	// 1. apply buffered input
	// 2. move the head, wrapping around the edges
	// 3. check for death
	// 4. eat and grow, or drop the tail
	e.state.Direction = e.state.PendingDirection
	next := e.state.Head().Step(e.state.Direction, e.gridSize)
	turn := e.state.Turn + 1

	if deathBySelfCollision(next, e.state.Snake) {
		e.endGame(turn)
		return
	}

	e.state.Turn = turn
	e.state.Snake = append([]Point{next}, e.state.Snake...)

	if e.state.Food != nil && next.Equal(*e.state.Food) {
		e.eat()
	} else {
		e.state.Snake = e.state.Snake[:len(e.state.Snake)-1]
	}

	log.WithFields(log.Fields{
		"GameID": e.ID,
		"Turn":   e.state.Turn,
		"Head":   next,
		"Length": len(e.state.Snake),
	}).Debug("tick")
}

func (e *Engine) eat() {
	e.state.Score++
	if e.state.Score%SpeedUpEvery == 0 && e.state.TickIntervalMs > MinTickIntervalMs {
		e.state.TickIntervalMs -= TickIntervalStepMs
	}
	eaten := *e.state.Food
	e.state.Food = e.spawnFood()

	log.WithFields(log.Fields{
		"GameID":       e.ID,
		"Turn":         e.state.Turn,
		"Food":         eaten,
		"Score":        e.state.Score,
		"TickInterval": e.state.TickIntervalMs,
	}).Info("snake ate")
}

func (e *Engine) endGame(turn int) {
	e.state.GameOver = true
	e.state.Death = &Death{
		Turn:  turn,
		Cause: DeathCauseSnakeSelfCollision,
	}
	if e.state.Score > e.state.HighScore {
		e.state.HighScore = e.state.Score
	}
	e.scores.SaveHighScore(e.state.HighScore)

	log.WithFields(log.Fields{
		"GameID":    e.ID,
		"Turn":      turn,
		"Score":     e.state.Score,
		"HighScore": e.state.HighScore,
		"Cause":     DeathCauseSnakeSelfCollision,
	}).Info("game over")
}
