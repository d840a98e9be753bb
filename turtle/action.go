package turtle

import (
	"fmt"
	"math"
	"strings"
)

type ActionKind uint8

const (
	ActionNothing ActionKind = iota
	ActionRotate
	ActionForward
	ActionStochasticRotate
	ActionStochasticForward
	ActionPush
	ActionPop
)

var actionNames = [...]string{
	ActionNothing:           "nothing",
	ActionRotate:            "rotate",
	ActionForward:           "forward",
	ActionStochasticRotate:  "stochastic-rotate",
	ActionStochasticForward: "stochastic-forward",
	ActionPush:              "push",
	ActionPop:               "pop",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", k)
}

// ParseActionKind is the inverse of ActionKind.String.
func ParseActionKind(s string) (ActionKind, error) {
	for k, name := range actionNames {
		if strings.EqualFold(s, name) {
			return ActionKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Action is what a token does to the interpreter State when replayed.
// Value holds the degrees of a rotation or the distance of a move; the
// stochastic kinds draw it from Distribution on every application instead.
type Action struct {
	Kind         ActionKind
	Value        int
	Distribution Distribution
}

func Nothing() Action {
	return Action{Kind: ActionNothing}
}

func Rotate(degrees int) Action {
	return Action{Kind: ActionRotate, Value: degrees}
}

func Forward(distance int) Action {
	return Action{Kind: ActionForward, Value: distance}
}

func StochasticRotate(d Distribution) Action {
	return Action{Kind: ActionStochasticRotate, Distribution: d}
}

func StochasticForward(d Distribution) Action {
	return Action{Kind: ActionStochasticForward, Distribution: d}
}

func Push() Action {
	return Action{Kind: ActionPush}
}

func Pop() Action {
	return Action{Kind: ActionPop}
}

func (a Action) Validate() error {
	switch a.Kind {
	case ActionNothing, ActionRotate, ActionForward, ActionPush, ActionPop:
		return nil
	case ActionStochasticRotate, ActionStochasticForward:
		if a.Distribution == nil {
			return fmt.Errorf("%w: %s", ErrNilDistribution, a.Kind)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Kind)
	}
}

// Apply performs the action on s. globalRotate is added to the accumulated
// angle whenever the heading is derived for a move.
// Stochastic actions without a distribution fail with ErrNilDistribution.
func (a Action) Apply(s *State, globalRotate int) error {
	if a.Distribution == nil && (a.Kind == ActionStochasticRotate || a.Kind == ActionStochasticForward) {
		return fmt.Errorf("%w: %s", ErrNilDistribution, a.Kind)
	}

	switch a.Kind {
	case ActionRotate:
		s.rotate(a.Value)
	case ActionStochasticRotate:
		s.rotate(a.Distribution.Sample(s.Rand))
	case ActionForward:
		s.forward(globalRotate, a.Value)
	case ActionStochasticForward:
		s.forward(globalRotate, a.Distribution.Sample(s.Rand))
	case ActionPush:
		s.Push()
	case ActionPop:
		return s.Pop()
	}
	return nil
}

func (s *State) rotate(degrees int) {
	s.Angle = (s.Angle + degrees) % 360
}

func (s *State) forward(globalRotate, distance int) {
	s.turtle.SetHeading(radians(globalRotate + s.Angle))
	s.turtle.Forward(distance)
}

func radians(degrees int) float64 {
	return float64(degrees) * math.Pi / 180
}
