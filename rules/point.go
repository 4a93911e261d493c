package rules

// Point is a cell on the board.
type Point struct {
	X int
	Y int
}

// Equal checks if 2 points are the same x,y coordinate
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Step moves the point one cell in the given direction, wrapping around the
// edges of a size x size board.
func (p Point) Step(d Direction, size int) Point {
	return Point{
		X: wrap(p.X+d.X, size),
		Y: wrap(p.Y+d.Y, size),
	}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Direction is a unit vector the snake travels along.
type Direction struct {
	X int
	Y int
}

var (
	// Up moves towards row 0
	Up = Direction{X: 0, Y: -1}
	// Down moves towards the last row
	Down = Direction{X: 0, Y: 1}
	// Left moves towards column 0
	Left = Direction{X: -1, Y: 0}
	// Right moves towards the last column
	Right = Direction{X: 1, Y: 0}
)

// Valid reports whether d is one of the four unit vectors.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// Reverses reports whether d points exactly the opposite way of other.
func (d Direction) Reverses(other Direction) bool {
	return d == other.Reverse()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
