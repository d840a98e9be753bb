package lsystem

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateToken = errors.New("duplicate token")
	ErrUnknownToken   = errors.New("unknown token")
	ErrEmptyToken     = errors.New("empty token name")
	ErrEmptyAxiom     = errors.New("empty axiom")
	ErrInvalidRule    = errors.New("invalid rule")
)

// TokenError reports which token broke construction and where it was used.
// Token is empty when only the handle is known.
type TokenError struct {
	Token   Token
	ID      TokenID
	Context string
	Err     error
}

func (e *TokenError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("lsystem: %s %q: %v", e.Context, e.Token, e.Err)
	}
	return fmt.Sprintf("lsystem: %s token #%d: %v", e.Context, e.ID, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
