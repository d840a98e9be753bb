package turtle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleTurtleForward(t *testing.T) {
	st := NewSimpleTurtle()
	assert.InDelta(t, math.Pi/2, st.Heading(), 1e-12)

	st.Forward(10)
	st.Right(math.Pi / 2)
	st.Forward(10)
	st.Left(math.Pi / 4)
	st.Forward(10)

	assert.Equal(t, []Line{{0, 0, 0, 10}, {0, 10, 10, 10}, {10, 10, 17, 17}}, st.Base().Lines())
}

func TestSimpleTurtleTruncatesTowardZero(t *testing.T) {
	st := NewSimpleTurtle()
	st.SetHeading(math.Pi + math.Pi/4)
	st.Forward(10)
	assert.Equal(t, []Line{{0, 0, -7, -7}}, st.Base().Lines())
}

func TestSimpleTurtlePenUpSkipsMove(t *testing.T) {
	st := NewSimpleTurtle()
	st.PenUp()
	st.Forward(10)
	assert.Equal(t, 0, st.Base().Y())
	assert.Empty(t, st.Base().Lines())

	st.PenDown()
	st.Base().PenUp()
	st.Forward(10)
	assert.Equal(t, 10, st.Base().Y())
	assert.Empty(t, st.Base().Lines())
}

func TestSimpleTurtleStack(t *testing.T) {
	st := NewSimpleTurtle()
	st.Forward(5)
	st.Push()
	st.Right(math.Pi / 2)
	st.Forward(5)
	require.Equal(t, 1, st.Depth())

	require.NoError(t, st.Pop())
	assert.Equal(t, 0, st.Base().X())
	assert.Equal(t, 5, st.Base().Y())
	assert.InDelta(t, math.Pi/2, st.Heading(), 1e-12)

	assert.ErrorIs(t, st.Pop(), ErrEmptyStack)
}

func TestStatePopKeepsStacksInLockstep(t *testing.T) {
	s := NewState(nil)
	s.Angle = 30
	s.Push()
	s.Angle = 120
	s.Turtle().Forward(4)

	require.NoError(t, s.Pop())
	assert.Equal(t, 30, s.Angle)
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, 0, s.Turtle().Depth())

	assert.ErrorIs(t, s.Pop(), ErrEmptyStack)
	assert.Equal(t, 30, s.Angle)
}
