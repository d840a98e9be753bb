package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lsystem "github.com/viktordanov/turtlesystem"
	"github.com/viktordanov/turtlesystem/turtle"
)

func TestLoadKoch(t *testing.T) {
	s, err := Load("../examples/koch.toml")
	require.NoError(t, err)
	assert.Equal(t, "koch", s.Name)
	assert.Equal(t, 7, s.Steps)

	system, renderer, err := s.Build()
	require.NoError(t, err)
	system.Step()

	state, err := renderer.Replay(system)
	require.NoError(t, err)
	assert.Len(t, state.Turtle().Base().Lines(), 5)

	opts, err := s.Options()
	require.NoError(t, err)
	assert.Equal(t, 10, opts.Padding)
	assert.Equal(t, 4.0, opts.Thickness)
	assert.Equal(t, color.RGBA{B: 100, A: 255}, opts.LineColor)
}

func TestLoadDragon(t *testing.T) {
	s, err := Load("../examples/dragon.yaml")
	require.NoError(t, err)
	assert.Equal(t, "dragon", s.Name)

	system, renderer, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, "FX", system.Render())

	system.StepBy(6)
	state, err := renderer.Replay(system)
	require.NoError(t, err)
	assert.Len(t, state.Turtle().Base().Lines(), 64)
}

func TestLoadPlantIsSeeded(t *testing.T) {
	s, err := Load("../examples/plant.toml")
	require.NoError(t, err)

	replay := func() []turtle.Line {
		system, renderer, err := s.Build()
		require.NoError(t, err)
		system.StepBy(4)
		state, err := renderer.Replay(system)
		require.NoError(t, err)
		return state.Turtle().Base().Lines()
	}
	assert.Equal(t, replay(), replay())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		doc    string
	}{
		{"unknown toml key", FormatTOML, "axiom = \"F\"\ncolour = 3\n"},
		{"unknown yaml key", FormatYAML, "axiom: F\ncolour: 3\n"},
		{"bad toml", FormatTOML, "axiom = \n"},
		{"bad format", Format("json"), "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		message string
	}{
		{
			name:    "unknown action",
			doc:     "axiom: F\ntokens:\n  - {name: F, action: jump}\n",
			wantErr: turtle.ErrUnknownAction,
			message: `token "F"`,
		},
		{
			name:    "empty range",
			doc:     "axiom: F\ntokens:\n  - {name: F, action: stochastic-forward, lower: 5, upper: 5}\n",
			wantErr: turtle.ErrInvalidRange,
		},
		{
			name:    "zero width range",
			doc:     "axiom: F\ntokens:\n  - {name: F, action: stochastic-forward, lower: 0, upper: 0, value: 4}\n",
			wantErr: turtle.ErrInvalidRange,
		},
		{
			name:    "half range",
			doc:     "axiom: F\ntokens:\n  - {name: F, action: stochastic-rotate, lower: 10}\n",
			wantErr: turtle.ErrInvalidRange,
			message: `token "F"`,
		},
		{
			name:    "duplicate token",
			doc:     "axiom: F\ntokens:\n  - {name: F, action: forward}\n  - {name: F, action: pop}\n",
			wantErr: lsystem.ErrDuplicateToken,
		},
		{
			name:    "unknown axiom token",
			doc:     "axiom: F G\ntokens:\n  - {name: F, action: forward}\n",
			wantErr: lsystem.ErrUnknownToken,
			message: "axiom",
		},
		{
			name:    "unknown rule token",
			doc:     "axiom: F\nrules: [\"F => F G\"]\ntokens:\n  - {name: F, action: forward}\n",
			wantErr: lsystem.ErrUnknownToken,
			message: "rule 1",
		},
		{
			name:    "empty axiom",
			doc:     "tokens:\n  - {name: F, action: forward}\n",
			wantErr: lsystem.ErrEmptyAxiom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Decode(strings.NewReader(tt.doc), FormatYAML)
			require.NoError(t, err)

			_, _, err = s.Build()
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestStochasticConstantFallback(t *testing.T) {
	s, err := Decode(strings.NewReader(`
axiom = "F"

[[tokens]]
name = "F"
action = "stochastic-forward"
value = 12
`), FormatTOML)
	require.NoError(t, err)

	system, renderer, err := s.Build()
	require.NoError(t, err)
	state, err := renderer.Replay(system)
	require.NoError(t, err)
	assert.Equal(t, []turtle.Line{{X1: 0, Y1: 0, X2: 12, Y2: 0}}, state.Turtle().Base().Lines())
}

func TestOptionsDefaultsAndErrors(t *testing.T) {
	s := &System{}
	opts, err := s.Options()
	require.NoError(t, err)
	assert.Equal(t, turtle.DefaultOptions(), opts)

	zero := 0
	s.Render.Padding = &zero
	opts, err = s.Options()
	require.NoError(t, err)
	assert.Equal(t, 0, opts.Padding)

	s.Render.Line = "blue"
	_, err = s.Options()
	assert.Error(t, err)

	s.Render.Line = ""
	negative := -3
	s.Render.Padding = &negative
	_, err = s.Options()
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	c, err = ParseColor("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	for _, bad := range []string{"", "#fff", "#gggggg", "#1020304"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNamesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algae.yml")
	doc := "axiom: A\nrules: [\"A => A B\", \"B => A\"]\ntokens:\n  - {name: A, action: nothing}\n  - {name: B, action: nothing}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "algae", s.Name)

	system, _, err := s.Build()
	require.NoError(t, err)
	system.StepBy(4)
	assert.Equal(t, "ABAABABA", system.Render())
}
