package lsystem

// Arena interns tokens. Every registered name receives the next handle,
// so the handles of an arena always form the range [0, Len()).
type Arena struct {
	ids   map[Token]TokenID
	names []Token
}

func NewArena() *Arena {
	return &Arena{
		ids: make(map[Token]TokenID),
	}
}

// Register interns name and returns its handle. Registering a name twice
// fails with ErrDuplicateToken and leaves the arena untouched.
func (a *Arena) Register(name Token) (TokenID, error) {
	if name == "" {
		return 0, ErrEmptyToken
	}
	if id, exists := a.ids[name]; exists {
		return id, &TokenError{Token: name, ID: id, Context: "register", Err: ErrDuplicateToken}
	}
	id := TokenID(len(a.names))
	a.names = append(a.names, name)
	a.ids[name] = id
	return id, nil
}

// Name returns the token registered under id.
func (a *Arena) Name(id TokenID) (Token, error) {
	if !a.Contains(id) {
		return "", &TokenError{ID: id, Context: "lookup", Err: ErrUnknownToken}
	}
	return a.names[id], nil
}

// Lookup returns the handle of name, if registered.
func (a *Arena) Lookup(name Token) (TokenID, bool) {
	id, ok := a.ids[name]
	return id, ok
}

func (a *Arena) Contains(id TokenID) bool {
	return id >= 0 && int(id) < len(a.names)
}

func (a *Arena) Len() int {
	return len(a.names)
}

// Names returns the registered tokens ordered by handle.
func (a *Arena) Names() []Token {
	names := make([]Token, len(a.names))
	copy(names, a.names)
	return names
}

func (a *Arena) clone() *Arena {
	c := &Arena{
		ids:   make(map[Token]TokenID, len(a.ids)),
		names: a.Names(),
	}
	for name, id := range a.ids {
		c.ids[name] = id
	}
	return c
}
