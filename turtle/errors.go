package turtle

import "errors"

var (
	// ErrEmptyStack is returned by a pop without a matching push. During a
	// replay it means the grammar produced unbalanced branches.
	ErrEmptyStack      = errors.New("turtle: pop on empty stack")
	ErrInvalidRange    = errors.New("turtle: invalid distribution range")
	ErrNilDistribution = errors.New("turtle: stochastic action without distribution")
	ErrUnknownAction   = errors.New("turtle: unknown action")
)
