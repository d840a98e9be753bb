package lsystem

import (
	"fmt"
	"strings"
)

const ruleArrow = "=>"

// ParseRule parses `<token> => <token> <token> ...` against the tokens of
// arena. An empty right-hand side erases the token.
func ParseRule(arena *Arena, str string) (ProductionRule, error) {
	lhs, rhs, found := strings.Cut(str, ruleArrow)
	if !found {
		return ProductionRule{}, fmt.Errorf("%w: missing %q in %q", ErrInvalidRule, ruleArrow, str)
	}

	predecessor := strings.Fields(lhs)
	if len(predecessor) != 1 {
		return ProductionRule{}, fmt.Errorf("%w: expected a single token before %q in %q", ErrInvalidRule, ruleArrow, str)
	}
	ids, err := symbolsToTokens(arena, "rule lhs", predecessor)
	if err != nil {
		return ProductionRule{}, err
	}

	successor, err := symbolsToTokens(arena, "rule rhs", strings.Fields(rhs))
	if err != nil {
		return ProductionRule{}, err
	}
	return NewProductionRule(ids[0], successor), nil
}

// ParseState resolves whitespace separated token names, e.g. an axiom "F X".
func ParseState(arena *Arena, state string) ([]TokenID, error) {
	return symbolsToTokens(arena, "axiom", strings.Fields(state))
}

func symbolsToTokens(arena *Arena, context string, symbols []string) ([]TokenID, error) {
	tokens := make([]TokenID, 0, len(symbols))
	for _, symbol := range symbols {
		id, ok := arena.Lookup(Token(symbol))
		if !ok {
			return nil, &TokenError{Token: Token(symbol), Context: context, Err: ErrUnknownToken}
		}
		tokens = append(tokens, id)
	}
	return tokens, nil
}
