// Package lsystem rewrites strings of interned tokens with deterministic,
// context-free production rules.
package lsystem

import (
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("lsystem")

// LSystem holds the current generation of a system together with the arena
// and rule table it was built from. The arena and rules are never modified
// once the system exists.
type LSystem struct {
	axiom []TokenID
	pool  *BufferPool

	arena      *Arena
	rules      *RuleTable
	generation int
}

func newLSystem(arena *Arena, rules *RuleTable, axiom []TokenID) *LSystem {
	l := &LSystem{
		axiom: axiom,
		pool:  NewBufferPool(len(axiom) * 16),
		arena: arena,
		rules: rules,
	}
	l.Reset()
	return l
}

// Arena returns the arena the system resolves names with. Callers must not
// register further tokens on it.
func (l *LSystem) Arena() *Arena {
	return l.arena
}

// Axiom returns a copy of the generation 0 state.
func (l *LSystem) Axiom() []TokenID {
	axiom := make([]TokenID, len(l.axiom))
	copy(axiom, l.axiom)
	return axiom
}

func (l *LSystem) Rules() []ProductionRule {
	return l.rules.Rules()
}

// Reset returns the system to generation 0.
func (l *LSystem) Reset() {
	l.pool.Load(l.axiom)
	l.generation = 0
}

// Step rewrites every token of the current generation in parallel: tokens
// with a rule are replaced by its successor, all others are copied.
func (l *LSystem) Step() {
	for _, id := range l.pool.ReadAll() {
		if successor, ok := l.rules.Successor(id); ok {
			l.pool.AppendSlice(successor)
		} else {
			l.pool.Append(id)
		}
	}
	l.pool.Swap()
	l.generation++

	log.Debugf("generation %d: %d tokens", l.generation, l.pool.GetLen())
}

// StepBy applies Step n times.
func (l *LSystem) StepBy(n int) {
	for i := 0; i < n; i++ {
		l.Step()
	}
}

func (l *LSystem) Generation() int {
	return l.generation
}

func (l *LSystem) Len() int {
	return l.pool.GetLen()
}

// Tokens returns a copy of the current generation.
func (l *LSystem) Tokens() []TokenID {
	state := l.pool.ReadAll()
	out := make([]TokenID, len(state))
	copy(out, state)
	return out
}

// Walk calls fn for every token of the current generation in order and stops
// at the first error. fn must not step the system.
func (l *LSystem) Walk(fn func(TokenID) error) error {
	for _, id := range l.pool.ReadAll() {
		if err := fn(id); err != nil {
			return err
		}
	}
	return nil
}

func (l *LSystem) Decode() []Token {
	state := l.pool.ReadAll()
	tokens := make([]Token, len(state))
	for i, id := range state {
		tokens[i] = l.arena.names[id]
	}
	return tokens
}

// Render concatenates the names of the current generation, e.g. "ABA".
func (l *LSystem) Render() string {
	return l.RenderWith("")
}

func (l *LSystem) RenderWith(sep string) string {
	var sb strings.Builder
	for i, id := range l.pool.ReadAll() {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(string(l.arena.names[id]))
	}
	return sb.String()
}

// IsVariable reports whether id has a production rule.
func (l *LSystem) IsVariable(id TokenID) bool {
	_, ok := l.rules.Successor(id)
	return ok
}

func (l *LSystem) Variables() TokenSet {
	vars := make(TokenSet)
	for id, name := range l.arena.names {
		if l.IsVariable(TokenID(id)) {
			vars.Add(name)
		}
	}
	return vars
}

func (l *LSystem) Constants() TokenSet {
	consts := make(TokenSet)
	for id, name := range l.arena.names {
		if !l.IsVariable(TokenID(id)) {
			consts.Add(name)
		}
	}
	return consts
}

func (l *LSystem) String() string {
	var sb strings.Builder
	sb.WriteString("axiom: ")
	for i, id := range l.axiom {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(string(l.arena.names[id]))
	}
	for _, r := range l.rules.Rules() {
		sb.WriteString("\n")
		sb.WriteString(r.Format(l.arena))
	}
	return sb.String()
}
