package turtle

import "pgregory.net/rand"

// State is what token actions operate on during a replay: a SimpleTurtle,
// the accumulated rotation in degrees and a stack of saved rotations that is
// pushed and popped together with the turtle's own stack.
type State struct {
	Angle int
	Rand  *rand.Rand

	angles []int
	turtle *SimpleTurtle
}

func NewState(rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New()
	}
	return &State{
		Rand:   rng,
		turtle: NewSimpleTurtle(),
	}
}

func (s *State) Turtle() *SimpleTurtle {
	return s.turtle
}

// Push saves the turtle position, heading and the accumulated angle.
func (s *State) Push() {
	s.turtle.Push()
	s.angles = append(s.angles, s.Angle)
}

// Pop restores what the matching Push saved. Both stacks are left untouched
// when either is empty.
func (s *State) Pop() error {
	if len(s.angles) == 0 || s.turtle.Depth() == 0 {
		return ErrEmptyStack
	}
	if err := s.turtle.Pop(); err != nil {
		return err
	}
	s.Angle = s.angles[len(s.angles)-1]
	s.angles = s.angles[:len(s.angles)-1]
	return nil
}

func (s *State) Depth() int {
	return len(s.angles)
}

func (s *State) Drawing() *Drawing {
	base := s.turtle.Base()
	width, height, minX, minY := base.Bounds()
	return &Drawing{
		Lines:  base.Lines(),
		Width:  width,
		Height: height,
		MinX:   minX,
		MinY:   minY,
	}
}
