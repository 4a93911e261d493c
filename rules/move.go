package rules

import (
	log "github.com/sirupsen/logrus"
)

// SetDirection buffers a direction change. It takes effect on the next tick.
// The request is ignored once the game is over, when d is not a unit vector,
// or when d is the exact reverse of the direction the snake is currently
// travelling. Only the applied direction is compared, so two quick turns
// within one tick interval can still add up to a reversal.
func (e *Engine) SetDirection(d Direction) {
	if e.state.GameOver || !d.Valid() {
		return
	}
	if d.Reverses(e.state.Direction) {
		log.WithFields(log.Fields{
			"GameID":    e.ID,
			"Direction": e.state.Direction,
			"Requested": d,
		}).Debug("reverse ignored")
		return
	}
	e.state.PendingDirection = d
}

// TogglePause flips between running and paused. It does nothing once the game
// is over.
func (e *Engine) TogglePause() {
	if e.state.GameOver {
		return
	}
	e.state.Paused = !e.state.Paused
	log.WithFields(log.Fields{
		"GameID": e.ID,
		"Turn":   e.state.Turn,
		"Paused": e.state.Paused,
	}).Info("pause toggled")
}
