package turtle

type Heading uint8

const (
	North Heading = iota
	West
	South
	East
)

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// Left returns the heading 90 degrees anticlockwise of h.
func (h Heading) Left() Heading {
	return (h + 1) % 4
}

// Right returns the heading 90 degrees clockwise of h.
func (h Heading) Right() Heading {
	return (h + 3) % 4
}

func (h Heading) DX() int {
	switch h {
	case West:
		return -1
	case East:
		return 1
	default:
		return 0
	}
}

func (h Heading) DY() int {
	switch h {
	case North:
		return 1
	case South:
		return -1
	default:
		return 0
	}
}

// CompassTurtle moves along the four compass directions only.
type CompassTurtle struct {
	turtle  BaseTurtle
	heading Heading
}

func NewCompassTurtle(heading Heading) *CompassTurtle {
	return &CompassTurtle{heading: heading}
}

func (t *CompassTurtle) Base() *BaseTurtle {
	return &t.turtle
}

func (t *CompassTurtle) Heading() Heading {
	return t.heading
}

func (t *CompassTurtle) Left() {
	t.heading = t.heading.Left()
}

func (t *CompassTurtle) Right() {
	t.heading = t.heading.Right()
}

func (t *CompassTurtle) Forward(distance int) {
	t.turtle.DeltaMove(t.heading.DX()*distance, t.heading.DY()*distance)
}
