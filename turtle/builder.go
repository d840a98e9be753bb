package turtle

import (
	"fmt"

	lsystem "github.com/viktordanov/turtlesystem"
)

// Builder assembles an LSystem together with the Renderer interpreting it.
// Its methods chain; the first error is kept and returned by Finish, and
// later calls become no-ops.
//
//	b := turtle.NewBuilder().
//		Token("F", turtle.Forward(30)).
//		Token("+", turtle.Rotate(90)).
//		Token("-", turtle.Rotate(-90)).
//		Axiom("F").
//		Rule("F => F + F - F - F + F")
//	system, renderer, err := b.Finish()
type Builder struct {
	builder      *lsystem.Builder
	actions      map[lsystem.TokenID]Action
	globalRotate int
	seed         *uint64
	err          error
}

func NewBuilder() *Builder {
	return &Builder{
		builder: lsystem.NewBuilder(),
		actions: make(map[lsystem.TokenID]Action),
	}
}

// Rotate sets the global rotation in degrees added to every heading.
func (b *Builder) Rotate(degrees int) *Builder {
	b.globalRotate = degrees
	return b
}

// Seed fixes the random source used by stochastic actions.
func (b *Builder) Seed(seed uint64) *Builder {
	b.seed = &seed
	return b
}

// Token registers name and binds action to it.
func (b *Builder) Token(name string, action Action) *Builder {
	if b.err != nil {
		return b
	}
	if err := action.Validate(); err != nil {
		b.err = fmt.Errorf("token %q: %w", name, err)
		return b
	}
	id, err := b.builder.Token(lsystem.Token(name))
	if err != nil {
		b.err = err
		return b
	}
	b.actions[id] = action
	return b
}

// Axiom sets the initial state from whitespace separated token names.
func (b *Builder) Axiom(axiom string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.builder.AxiomText(axiom)
	return b
}

// Rule adds a production written as `X => X + Y F +`.
func (b *Builder) Rule(rule string) *Builder {
	if b.err != nil {
		return b
	}
	b.err = b.builder.Rule(rule)
	return b
}

func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) Finish() (*lsystem.LSystem, *Renderer, error) {
	if b.err != nil {
		return nil, nil, b.err
	}
	system, err := b.builder.Finish()
	if err != nil {
		return nil, nil, err
	}

	renderer := NewRenderer()
	if b.seed != nil {
		renderer.Seed(*b.seed)
	}
	for id, action := range b.actions {
		if action.Kind == ActionNothing {
			continue
		}
		if err := renderer.RegisterAction(id, action, b.globalRotate); err != nil {
			return nil, nil, err
		}
	}
	return system, renderer, nil
}
