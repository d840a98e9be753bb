// Package config loads turtle L-system descriptions from TOML or YAML files.
package config

import (
	"bytes"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	lsystem "github.com/viktordanov/turtlesystem"
	"github.com/viktordanov/turtlesystem/turtle"
)

var log = commonlog.GetLogger("config")

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// System describes a turtle L-system and how to draw it.
type System struct {
	Name   string   `toml:"name" yaml:"name"`
	Axiom  string   `toml:"axiom" yaml:"axiom"`
	Rules  []string `toml:"rules" yaml:"rules"`
	Rotate int      `toml:"rotate" yaml:"rotate"`
	Steps  int      `toml:"steps" yaml:"steps"`
	// Seed fixes the random source of stochastic actions; 0 leaves it
	// nondeterministic.
	Seed   uint64  `toml:"seed" yaml:"seed"`
	Tokens []Token `toml:"tokens" yaml:"tokens"`
	Render Render  `toml:"render" yaml:"render"`
}

// Token binds a symbol to an action. Stochastic actions sample uniformly
// from [Lower, Upper) when a range is given and use Value otherwise; a range
// needs both bounds.
type Token struct {
	Name   string `toml:"name" yaml:"name"`
	Action string `toml:"action" yaml:"action"`
	Value  int    `toml:"value" yaml:"value"`
	Lower  *int   `toml:"lower" yaml:"lower"`
	Upper  *int   `toml:"upper" yaml:"upper"`
}

type Render struct {
	Padding   *int    `toml:"padding" yaml:"padding"`
	Thickness float64 `toml:"thickness" yaml:"thickness"`
	Fill      string  `toml:"fill" yaml:"fill"`
	Line      string  `toml:"line" yaml:"line"`
}

// Load reads a description, choosing the format from the file extension.
func Load(path string) (*System, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = FormatTOML
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, errors.Errorf("%s: unsupported file extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading system description")
	}

	s, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	log.Infof("loaded %s: %d tokens, %d rules", s.Name, len(s.Tokens), len(s.Rules))
	return s, nil
}

// Decode parses a description. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*System, error) {
	var s System
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	default:
		return nil, errors.Errorf("unsupported format %q", format)
	}
	return &s, nil
}

// Builder turns the description into a turtle.Builder.
func (s *System) Builder() (*turtle.Builder, error) {
	b := turtle.NewBuilder().Rotate(s.Rotate)
	if s.Seed != 0 {
		b.Seed(s.Seed)
	}

	for _, t := range s.Tokens {
		action, err := t.action()
		if err != nil {
			return nil, errors.Wrapf(err, "token %q", t.Name)
		}
		if err := b.Token(t.Name, action).Err(); err != nil {
			return nil, err
		}
	}

	if err := b.Axiom(s.Axiom).Err(); err != nil {
		return nil, errors.Wrap(err, "axiom")
	}
	for i, rule := range s.Rules {
		if err := b.Rule(rule).Err(); err != nil {
			return nil, errors.Wrapf(err, "rule %d", i+1)
		}
	}
	return b, nil
}

// Build produces the system and its renderer, both at generation 0.
func (s *System) Build() (*lsystem.LSystem, *turtle.Renderer, error) {
	b, err := s.Builder()
	if err != nil {
		return nil, nil, err
	}
	return b.Finish()
}

// Options returns the render options, starting from turtle.DefaultOptions.
func (s *System) Options() (turtle.Options, error) {
	opts := turtle.DefaultOptions()
	if s.Render.Padding != nil {
		opts.Padding = *s.Render.Padding
	}
	if s.Render.Thickness != 0 {
		opts.Thickness = s.Render.Thickness
	}
	if s.Render.Fill != "" {
		c, err := ParseColor(s.Render.Fill)
		if err != nil {
			return opts, errors.Wrap(err, "render fill")
		}
		opts.FillColor = c
	}
	if s.Render.Line != "" {
		c, err := ParseColor(s.Render.Line)
		if err != nil {
			return opts, errors.Wrap(err, "render line")
		}
		opts.LineColor = c
	}
	return opts, opts.Validate()
}

func (t Token) action() (turtle.Action, error) {
	kind, err := turtle.ParseActionKind(t.Action)
	if err != nil {
		return turtle.Action{}, err
	}

	switch kind {
	case turtle.ActionStochasticRotate, turtle.ActionStochasticForward:
		d, err := t.distribution()
		if err != nil {
			return turtle.Action{}, err
		}
		return turtle.Action{Kind: kind, Distribution: d}, nil
	default:
		return turtle.Action{Kind: kind, Value: t.Value}, nil
	}
}

func (t Token) distribution() (turtle.Distribution, error) {
	switch {
	case t.Lower == nil && t.Upper == nil:
		return turtle.Constant(t.Value), nil
	case t.Lower == nil || t.Upper == nil:
		return nil, errors.Wrap(turtle.ErrInvalidRange, "range needs both lower and upper")
	}
	return turtle.NewUniform(*t.Lower, *t.Upper)
}

// ParseColor accepts "#rrggbb" and "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, errors.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
