package turtle

import (
	"errors"
	"image/color"
)

// Drawing is the result of a replay in turtle coordinates.
type Drawing struct {
	Lines  []Line
	Width  int
	Height int
	MinX   int
	MinY   int
}

// Translated returns the lines moved by (-MinX, -MinY), so that every
// endpoint lies inside [0, Width] x [0, Height].
func (d *Drawing) Translated() []Line {
	out := make([]Line, len(d.Lines))
	for i, l := range d.Lines {
		out[i] = Line{l.X1 - d.MinX, l.Y1 - d.MinY, l.X2 - d.MinX, l.Y2 - d.MinY}
	}
	return out
}

// Options are interpreted by the Rasterizer only.
type Options struct {
	Padding   int
	Thickness float64
	FillColor color.RGBA
	LineColor color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Padding:   10,
		Thickness: 4,
		FillColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LineColor: color.RGBA{A: 255},
	}
}

func (o Options) Validate() error {
	if o.Padding < 0 {
		return errors.New("turtle: negative padding")
	}
	if o.Thickness <= 0 {
		return errors.New("turtle: thickness must be positive")
	}
	return nil
}

// Rasterizer turns a Drawing into an image.
type Rasterizer interface {
	Rasterize(d *Drawing, opts Options) error
}
