// Package svg writes turtle drawings as SVG documents.
package svg

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/viktordanov/turtlesystem/turtle"
)

// Rasterizer writes every Drawing it receives to w as a standalone SVG
// document. Points are translated by (-MinX, -MinY) and offset by the
// padding; the y axis is not flipped.
type Rasterizer struct {
	w io.Writer
}

func NewRasterizer(w io.Writer) *Rasterizer {
	return &Rasterizer{w: w}
}

func (r *Rasterizer) Rasterize(d *turtle.Drawing, opts turtle.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(r.w)
	width := d.Width + 2*opts.Padding
	height := d.Height + 2*opts.Padding

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s" fill-opacity="%s"/>`+"\n",
		hex(opts.FillColor), opacity(opts.FillColor))

	if len(d.Lines) > 0 {
		fmt.Fprintf(bw, `<path fill="none" stroke="%s" stroke-opacity="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round" d="`,
			hex(opts.LineColor), opacity(opts.LineColor), strconv.FormatFloat(opts.Thickness, 'f', -1, 64))
		writePath(bw, d.Translated(), opts.Padding)
		bw.WriteString("\"/>\n")
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// writePath joins consecutive segments sharing an endpoint into a single
// subpath.
func writePath(bw *bufio.Writer, lines []turtle.Line, padding int) {
	lastX, lastY := 0, 0
	for i, l := range lines {
		x1, y1 := l.X1+padding, l.Y1+padding
		x2, y2 := l.X2+padding, l.Y2+padding
		if i == 0 || x1 != lastX || y1 != lastY {
			if i > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "M%d %d", x1, y1)
		}
		fmt.Fprintf(bw, " L%d %d", x2, y2)
		lastX, lastY = x2, y2
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c color.RGBA) string {
	return strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
}
