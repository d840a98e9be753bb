package turtle

import "math"

type savedState struct {
	x, y    int
	heading float64
}

// SimpleTurtle has a continuous heading in radians and a stack of saved
// positions for branching. It carries its own pen flag on top of the one of
// the wrapped BaseTurtle: while it is up, Forward does not move at all.
type SimpleTurtle struct {
	turtle  BaseTurtle
	heading float64
	stack   []savedState
	penUp   bool
}

// NewSimpleTurtle returns a turtle at the origin facing up (pi/2).
func NewSimpleTurtle() *SimpleTurtle {
	return &SimpleTurtle{
		heading: math.Pi / 2,
	}
}

func (t *SimpleTurtle) Base() *BaseTurtle {
	return &t.turtle
}

// Left turns the turtle anticlockwise by angle radians.
func (t *SimpleTurtle) Left(angle float64) {
	t.heading += angle
}

// Right turns the turtle clockwise by angle radians.
func (t *SimpleTurtle) Right(angle float64) {
	t.heading -= angle
}

func (t *SimpleTurtle) SetHeading(heading float64) {
	t.heading = heading
}

func (t *SimpleTurtle) Heading() float64 {
	return t.heading
}

func (t *SimpleTurtle) PenUp() {
	t.penUp = true
}

func (t *SimpleTurtle) PenDown() {
	t.penUp = false
}

// Forward moves distance units along the heading. The displacement is
// truncated toward zero on each axis.
func (t *SimpleTurtle) Forward(distance int) {
	if t.penUp {
		return
	}
	dx := math.Cos(t.heading) * float64(distance)
	dy := math.Sin(t.heading) * float64(distance)
	t.turtle.DeltaMove(int(dx), int(dy))
}

// Push saves the position and heading.
func (t *SimpleTurtle) Push() {
	t.stack = append(t.stack, savedState{t.turtle.X(), t.turtle.Y(), t.heading})
}

// Pop restores the most recently pushed position and heading.
func (t *SimpleTurtle) Pop() error {
	if len(t.stack) == 0 {
		return ErrEmptyStack
	}
	s := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]

	t.turtle.SetPosition(s.x, s.y)
	t.heading = s.heading
	return nil
}

func (t *SimpleTurtle) Depth() int {
	return len(t.stack)
}
