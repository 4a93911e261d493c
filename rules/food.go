package rules

// spawnFood picks a uniformly random cell that the snake does not occupy,
// resampling until it lands on a free one. A full board has no food.
func (e *Engine) spawnFood() *Point {
	if len(e.state.Snake) >= e.gridSize*e.gridSize {
		return nil
	}
	for {
		p := Point{
			X: e.rand.Intn(e.gridSize),
			Y: e.rand.Intn(e.gridSize),
		}
		if !occupied(p, e.state.Snake) {
			return &p
		}
	}
}

func occupied(p Point, body []Point) bool {
	for _, b := range body {
		if p.Equal(b) {
			return true
		}
	}
	return false
}
