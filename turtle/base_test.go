package turtle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rand"
)

func TestBaseTurtleDeltaMove(t *testing.T) {
	bt := NewBaseTurtle()
	bt.DeltaMove(10, 0)
	bt.DeltaMove(0, -5)

	assert.Equal(t, []Line{{0, 0, 10, 0}, {10, 0, 10, -5}}, bt.Lines())
	assert.Equal(t, 10, bt.X())
	assert.Equal(t, -5, bt.Y())

	width, height, minX, minY := bt.Bounds()
	assert.Equal(t, 10, width)
	assert.Equal(t, 5, height)
	assert.Equal(t, 0, minX)
	assert.Equal(t, -5, minY)
}

func TestBaseTurtlePenUp(t *testing.T) {
	bt := NewBaseTurtle()
	bt.PenUp()
	assert.False(t, bt.IsPenDown())
	bt.DeltaMove(-20, 3)
	assert.Empty(t, bt.Lines())

	bt.PenDown()
	bt.DeltaMove(5, 0)
	assert.Equal(t, []Line{{-20, 3, -15, 3}}, bt.Lines())

	width, height, minX, minY := bt.Bounds()
	assert.Equal(t, 20, width, "bounds include positions reached with the pen up")
	assert.Equal(t, 3, height)
	assert.Equal(t, -20, minX)
	assert.Equal(t, 0, minY)
}

func TestBaseTurtleSetPosition(t *testing.T) {
	bt := NewBaseTurtle()
	bt.SetPosition(7, 9)
	assert.Empty(t, bt.Lines())

	width, height, minX, minY := bt.Bounds()
	assert.Equal(t, 7, width)
	assert.Equal(t, 9, height)
	assert.Zero(t, minX)
	assert.Zero(t, minY)
}

func TestBoundsContainTranslatedLines(t *testing.T) {
	rng := rand.New(7)
	for run := 0; run < 50; run++ {
		bt := NewBaseTurtle()
		for i := 0; i < 200; i++ {
			switch rng.Intn(4) {
			case 0:
				bt.SetPosition(rng.Intn(401)-200, rng.Intn(401)-200)
			case 1:
				bt.PenUp()
				bt.DeltaMove(rng.Intn(61)-30, rng.Intn(61)-30)
				bt.PenDown()
			default:
				bt.DeltaMove(rng.Intn(61)-30, rng.Intn(61)-30)
			}
		}

		width, height, minX, minY := bt.Bounds()
		d := &Drawing{Lines: bt.Lines(), Width: width, Height: height, MinX: minX, MinY: minY}
		for _, l := range d.Translated() {
			require.True(t, l.X1 >= 0 && l.X1 <= width && l.X2 >= 0 && l.X2 <= width, "line %v outside width %d", l, width)
			require.True(t, l.Y1 >= 0 && l.Y1 <= height && l.Y2 >= 0 && l.Y2 <= height, "line %v outside height %d", l, height)
		}
	}
}

func TestHeadingTurns(t *testing.T) {
	assert.Equal(t, West, North.Left())
	assert.Equal(t, South, West.Left())
	assert.Equal(t, East, South.Left())
	assert.Equal(t, North, East.Left())

	for _, h := range []Heading{North, West, South, East} {
		assert.Equal(t, h, h.Left().Right())
		assert.Equal(t, h, h.Left().Left().Left().Left())
	}
	assert.Equal(t, "east", North.Right().String())
}

func TestCompassTurtle(t *testing.T) {
	ct := NewCompassTurtle(North)
	ct.Forward(3)
	ct.Right()
	ct.Forward(2)
	ct.Right()
	ct.Forward(1)
	ct.Left()
	ct.Left()
	ct.Left()
	ct.Forward(4)

	var m Mover = ct
	assert.Equal(t, []Line{{0, 0, 0, 3}, {0, 3, 2, 3}, {2, 3, 2, 2}, {2, 2, -2, 2}}, m.Base().Lines())
	assert.Equal(t, West, ct.Heading())
}
