package lsystem

type Buffer struct {
	Tokens []TokenID
	Len    int
}

func (b *Buffer) Cap() int {
	return len(b.Tokens)
}

// BufferPool double-buffers the expansion: a generation is read from the
// front buffer while the next one is appended to the back buffer, then the
// two are swapped. Buffers only ever grow, so once the sequence stops growing
// a step allocates nothing.
type BufferPool struct {
	active   *Buffer
	inactive *Buffer

	swap bool
}

func NewBufferPool(capacity int) *BufferPool {
	if capacity < 1 {
		capacity = 1
	}
	return &BufferPool{
		active: &Buffer{
			Tokens: make([]TokenID, capacity),
		},
		inactive: &Buffer{
			Tokens: make([]TokenID, capacity),
		},
	}
}

// Load replaces the front buffer with a copy of tokens.
func (m *BufferPool) Load(tokens []TokenID) {
	m.active.Len = 0
	m.inactive.Len = 0
	m.swap = false

	front := m.GetFront()
	if len(tokens) > front.Cap() {
		front.Tokens = make([]TokenID, len(tokens))
	}
	copy(front.Tokens, tokens)
	front.Len = len(tokens)
}

func (m *BufferPool) GetFront() *Buffer {
	if m.swap {
		return m.inactive
	}
	return m.active
}

func (m *BufferPool) GetBack() *Buffer {
	if m.swap {
		return m.active
	}
	return m.inactive
}

// ReadAll returns the front buffer contents. The slice is only valid until
// the next Swap.
func (m *BufferPool) ReadAll() []TokenID {
	front := m.GetFront()
	return front.Tokens[:front.Len]
}

func (m *BufferPool) Append(id TokenID) {
	back := m.GetBack()
	if back.Len >= back.Cap() {
		m.grow(back, back.Len+1)
	}
	back.Tokens[back.Len] = id
	back.Len++
}

func (m *BufferPool) AppendSlice(ids []TokenID) {
	back := m.GetBack()
	if back.Len+len(ids) > back.Cap() {
		m.grow(back, back.Len+len(ids))
	}
	copy(back.Tokens[back.Len:], ids)
	back.Len += len(ids)
}

func (m *BufferPool) GetLen() int {
	return m.GetFront().Len
}

func (m *BufferPool) grow(b *Buffer, needed int) {
	newCap := b.Cap() * 2
	if newCap == 0 {
		newCap = 1
	}
	for newCap < needed {
		newCap *= 2
	}
	newSlice := make([]TokenID, newCap)
	copy(newSlice, b.Tokens[:b.Len])
	b.Tokens = newSlice
}

// Swap publishes the back buffer as the new front and clears the old front
// so it can receive the following generation.
func (m *BufferPool) Swap() {
	m.swap = !m.swap
	m.GetBack().Len = 0
}
