package rules

// GameStatus is the state machine position of a game.
type GameStatus string

const (
	// GameStatusRunning represents a game that advances on every tick
	GameStatusRunning GameStatus = "running"
	// GameStatusPaused represents a game where ticks have no effect until resumed
	GameStatusPaused GameStatus = "paused"
	// GameStatusOver represents a game that ended, only a reset leaves this state
	GameStatusOver GameStatus = "game-over"
)

// Status returns the state machine position of the game.
func (e *Engine) Status() GameStatus {
	switch {
	case e.state.GameOver:
		return GameStatusOver
	case e.state.Paused:
		return GameStatusPaused
	}
	return GameStatusRunning
}
