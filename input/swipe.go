package input

import "math"

// DefaultSwipeThreshold is the travel, in device pixels, before a drag counts
// as a swipe.
const DefaultSwipeThreshold = 24

// Swipe recognises one directional swipe per gesture. Coordinates grow right
// and down.
type Swipe struct {
	Threshold float64

	startX, startY float64
	active         bool
}

// Start begins a gesture at x, y.
func (s *Swipe) Start(x, y float64) {
	s.startX, s.startY = x, y
	s.active = true
}

// Active reports whether a gesture is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// Move reports the swipe direction once the pointer has travelled at least
// Threshold along either axis, the longer axis wins. A gesture fires at most
// once; further moves return None until the next Start.
func (s *Swipe) Move(x, y float64) Action {
	if !s.active {
		return None
	}
	threshold := s.Threshold
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	dx, dy := x-s.startX, y-s.startY
	adx, ady := math.Abs(dx), math.Abs(dy)
	if adx < threshold && ady < threshold {
		return None
	}
	s.active = false
	if adx > ady {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Down
	}
	return Up
}

// End abandons the gesture.
func (s *Swipe) End() {
	s.active = false
}
