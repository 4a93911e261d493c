package rules

const (
	// DeathCauseSnakeSelfCollision is the death reason when the head runs into
	// the snake's own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)

// Death records when and why a game ended.
type Death struct {
	Turn  int
	Cause string
}

// deathBySelfCollision checks the next head position against every segment the
// snake currently occupies, tail included.
func deathBySelfCollision(next Point, body []Point) bool {
	return occupied(next, body)
}
