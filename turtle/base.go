// Package turtle interprets the generations of an L-system as turtle
// graphics: every token is bound to an action that moves or turns a turtle,
// and replaying a generation yields the line segments of the figure.
package turtle

// Line is a segment drawn from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 int
}

// BaseTurtle tracks an integer position, records a Line for every move made
// while the pen is down and keeps the bounding box of every position it has
// visited, including the origin. The zero value is a turtle at (0, 0) with
// its pen down.
type BaseTurtle struct {
	x, y  int
	lines []Line

	minX, minY int
	maxX, maxY int

	penUp bool
}

func NewBaseTurtle() *BaseTurtle {
	return &BaseTurtle{}
}

func (t *BaseTurtle) X() int {
	return t.x
}

func (t *BaseTurtle) Y() int {
	return t.y
}

// Lines returns the recorded segments in drawing order.
func (t *BaseTurtle) Lines() []Line {
	return t.lines
}

// SetPosition moves the turtle to (x, y) without drawing.
func (t *BaseTurtle) SetPosition(x, y int) {
	t.x = x
	t.y = y
	t.updateBounds()
}

// DeltaMove moves the turtle by (dx, dy), drawing a line if the pen is down.
func (t *BaseTurtle) DeltaMove(dx, dy int) {
	x2 := t.x + dx
	y2 := t.y + dy

	if !t.penUp {
		t.lines = append(t.lines, Line{t.x, t.y, x2, y2})
	}

	t.x = x2
	t.y = y2
	t.updateBounds()
}

func (t *BaseTurtle) updateBounds() {
	t.minX = min(t.minX, t.x)
	t.minY = min(t.minY, t.y)
	t.maxX = max(t.maxX, t.x)
	t.maxY = max(t.maxY, t.y)
}

// Bounds returns the extent of every visited position. Translating a point
// by (-minX, -minY) places it inside [0, width] x [0, height].
func (t *BaseTurtle) Bounds() (width, height, minX, minY int) {
	return t.maxX - t.minX, t.maxY - t.minY, t.minX, t.minY
}

func (t *BaseTurtle) PenDown() {
	t.penUp = false
}

func (t *BaseTurtle) PenUp() {
	t.penUp = true
}

func (t *BaseTurtle) IsPenDown() bool {
	return !t.penUp
}

// Mover is a turtle that knows its own heading.
type Mover interface {
	Base() *BaseTurtle
	Forward(distance int)
}
