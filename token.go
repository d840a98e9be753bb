package lsystem

import "sort"

// Token is the human readable name of a symbol.
type Token string

// TokenID is the interned handle of a Token. Handles are dense and start at 0.
type TokenID int

type TokenSet map[Token]struct{}

func (ts TokenSet) Contains(t Token) bool {
	_, exists := ts[t]
	return exists
}

func (ts TokenSet) Add(t Token) {
	ts[t] = struct{}{}
}

// AsSlice returns the members of the set in lexical order.
func (ts TokenSet) AsSlice() []Token {
	slice := make([]Token, 0, len(ts))
	for t := range ts {
		slice = append(slice, t)
	}
	sort.Slice(slice, func(i, j int) bool { return slice[i] < slice[j] })
	return slice
}
