package pipegrid

import "fmt"

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	// North points toward decreasing Y.
	North Direction = iota
	// East points toward increasing X.
	East
	// South points toward increasing Y.
	South
	// West points toward decreasing X.
	West
)

// Directions lists every direction in neighbor-scan order.
var Directions = [4]Direction{North, East, South, West}

// Rotation selects how Rotate turns a direction.
type Rotation uint8

const (
	// Clockwise turns 90° clockwise (North → East with Y downward).
	Clockwise Rotation = iota
	// CounterClockwise turns 90° counter-clockwise (North → West).
	CounterClockwise
	// Reverse turns 180°.
	Reverse
)

// rotations[d][r] is d rotated by r.
var rotations = [4][3]Direction{
	North: {Clockwise: East, CounterClockwise: West, Reverse: South},
	East:  {Clockwise: South, CounterClockwise: North, Reverse: West},
	South: {Clockwise: West, CounterClockwise: East, Reverse: North},
	West:  {Clockwise: North, CounterClockwise: South, Reverse: East},
}

// offsets[d] is the unit (dx, dy) step for d.
var offsets = [4][2]int{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var directionNames = [4]string{"North", "East", "South", "West"}

// Rotate returns d turned by r. Total over all directions and rotations.
func (d Direction) Rotate(r Rotation) Direction {
	return rotations[d][r]
}

// CW returns d rotated 90° clockwise.
func (d Direction) CW() Direction { return d.Rotate(Clockwise) }

// CCW returns d rotated 90° counter-clockwise.
func (d Direction) CCW() Direction { return d.Rotate(CounterClockwise) }

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return d.Rotate(Reverse) }

// Offset returns the unit step (dx, dy) for d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d]
	return o[0], o[1]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Coordinate indexes a grid cell. X grows to the east, Y to the south.
type Coordinate struct {
	X, Y int
}

// Step returns the coordinate one cell away in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// DirectionBetween returns the direction leading from one coordinate to a
// 4-adjacent one. ok is false when the two are not unit neighbors.
func DirectionBetween(from, to Coordinate) (d Direction, ok bool) {
	for _, dir := range Directions {
		if from.Step(dir) == to {
			return dir, true
		}
	}
	return 0, false
}
