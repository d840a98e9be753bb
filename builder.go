package lsystem

// Builder collects tokens, the axiom and the rules of a system. Finish
// validates them and produces an LSystem that no longer shares state with the
// builder.
type Builder struct {
	arena *Arena
	rules *RuleTable
	axiom []TokenID
}

func NewBuilder() *Builder {
	return &Builder{
		arena: NewArena(),
		rules: NewRuleTable(0),
	}
}

// Token registers a new token and returns its handle.
func (b *Builder) Token(name Token) (TokenID, error) {
	return b.arena.Register(name)
}

func (b *Builder) Arena() *Arena {
	return b.arena
}

// Axiom sets the initial state. Every handle must already be registered.
func (b *Builder) Axiom(axiom []TokenID) error {
	if len(axiom) == 0 {
		return ErrEmptyAxiom
	}
	if err := b.checkKnown("axiom", axiom...); err != nil {
		return err
	}
	b.axiom = make([]TokenID, len(axiom))
	copy(b.axiom, axiom)
	return nil
}

// AxiomText sets the axiom from whitespace separated token names.
func (b *Builder) AxiomText(axiom string) error {
	state, err := ParseState(b.arena, axiom)
	if err != nil {
		return err
	}
	return b.Axiom(state)
}

// TransformationRule sets the production lhs => rhs. A later rule for the
// same lhs replaces the earlier one.
func (b *Builder) TransformationRule(lhs TokenID, rhs []TokenID) error {
	if err := b.checkKnown("rule lhs", lhs); err != nil {
		return err
	}
	if err := b.checkKnown("rule rhs", rhs...); err != nil {
		return err
	}
	b.rules.Set(NewProductionRule(lhs, rhs))
	return nil
}

// Rule adds a production written as `A => A B`.
func (b *Builder) Rule(rule string) error {
	r, err := ParseRule(b.arena, rule)
	if err != nil {
		return err
	}
	b.rules.Set(r)
	return nil
}

func (b *Builder) Finish() (*LSystem, error) {
	if len(b.axiom) == 0 {
		return nil, ErrEmptyAxiom
	}
	if err := b.checkKnown("axiom", b.axiom...); err != nil {
		return nil, err
	}
	axiom := make([]TokenID, len(b.axiom))
	copy(axiom, b.axiom)

	return newLSystem(b.arena.clone(), b.rules.clone(b.arena.Len()), axiom), nil
}

func (b *Builder) checkKnown(context string, ids ...TokenID) error {
	for _, id := range ids {
		if !b.arena.Contains(id) {
			return &TokenError{ID: id, Context: context, Err: ErrUnknownToken}
		}
	}
	return nil
}
