package lsystem

import "strings"

type ProductionRule struct {
	Predecessor TokenID
	Successor   []TokenID
}

func NewProductionRule(predecessor TokenID, successor []TokenID) ProductionRule {
	tokens := make([]TokenID, len(successor))
	copy(tokens, successor)
	return ProductionRule{
		Predecessor: predecessor,
		Successor:   tokens,
	}
}

// Format renders the rule in its text form, e.g. `A => A B`.
func (r *ProductionRule) Format(arena *Arena) string {
	var sb strings.Builder
	sb.WriteString(string(arena.names[r.Predecessor]))
	sb.WriteString(" =>")
	for _, t := range r.Successor {
		sb.WriteRune(' ')
		sb.WriteString(string(arena.names[t]))
	}
	return sb.String()
}

// RuleTable maps a handle to its production. It is indexed directly by
// TokenID; a nil slot means the token rewrites to itself.
type RuleTable struct {
	rules []*ProductionRule
	count int
}

func NewRuleTable(size int) *RuleTable {
	return &RuleTable{
		rules: make([]*ProductionRule, size),
	}
}

// Set stores the production for r.Predecessor, replacing any previous one.
func (rt *RuleTable) Set(r ProductionRule) {
	if int(r.Predecessor) >= len(rt.rules) {
		grown := make([]*ProductionRule, int(r.Predecessor)+1)
		copy(grown, rt.rules)
		rt.rules = grown
	}
	if rt.rules[r.Predecessor] == nil {
		rt.count++
	}
	rt.rules[r.Predecessor] = &r
}

// Successor returns the replacement of id. ok is false for terminal tokens.
func (rt *RuleTable) Successor(id TokenID) (successor []TokenID, ok bool) {
	if int(id) >= len(rt.rules) || rt.rules[id] == nil {
		return nil, false
	}
	return rt.rules[id].Successor, true
}

func (rt *RuleTable) Len() int {
	return rt.count
}

// Rules returns the productions ordered by predecessor handle.
func (rt *RuleTable) Rules() []ProductionRule {
	out := make([]ProductionRule, 0, rt.count)
	for _, r := range rt.rules {
		if r != nil {
			out = append(out, NewProductionRule(r.Predecessor, r.Successor))
		}
	}
	return out
}

func (rt *RuleTable) clone(size int) *RuleTable {
	if size < len(rt.rules) {
		size = len(rt.rules)
	}
	c := NewRuleTable(size)
	for _, r := range rt.Rules() {
		c.Set(r)
	}
	return c
}
