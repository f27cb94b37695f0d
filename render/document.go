// Package render assembles animated SVG documents from styled
// hypotrochoid curves.
//
// A [Document] draws each of its [RosettaStyle] entries as a glowing,
// rotating path on top of a dark background and a grid, with a CSS hue
// cycle and a fade-in overlay. The SVG skeleton is emitted through
// ajstarks/svgo; fragments that have no first-class canvas calls
// (pattern, filter, transform animation) are written as raw markup.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ajstarks/svgo"

	"rosetta"
)

// DefaultSize is the canvas width and height used when [Document.Width]
// or [Document.Height] is left zero.
const DefaultSize = 800

// Document is a complete animated drawing of one or more rosettas.
type Document struct {
	// Width and Height are the canvas size. Zero values default to
	// DefaultSize.
	Width  int
	Height int
	// Grid is the background grid. A zero value defaults to
	// DefaultGrid.
	Grid GridStyle
	// Rosettas are drawn in order.
	Rosettas []RosettaStyle
	// Precision caps the number of decimals in path data. Zero keeps
	// the shortest unambiguous representation of every coordinate.
	Precision int
}

// The hue cycle runs over the whole drawing while each curve rotates at
// its own pace; the overlay fades the drawing in from black.
const documentStyle = `
@keyframes rainbow-cycle {
  0% { filter: hue-rotate(0deg); }
  100% { filter: hue-rotate(360deg); }
}

#rosettas {
  transform: translate(50%, 50%) scale(1.4);
  animation: rainbow-cycle 5s linear infinite;
}

path {
  filter: url(#glow);
}

@keyframes fadeFromBlack {
  from { opacity: 1; }
  to { opacity: 0; }
}

#black-overlay {
  animation: fadeFromBlack 5s ease-in forwards;
  pointer-events: none;
}
`

const glowFilter = `<filter id="glow">
<feGaussianBlur stdDeviation="1.5" result="coloredBlur"/>
<feMerge>
<feMergeNode in="coloredBlur"/>
<feMergeNode in="SourceGraphic"/>
</feMerge>
</filter>`

// Render writes the document to w as SVG.
//
// Every curve is validated before anything is written: an invalid
// curve fails the whole render with an error wrapping
// [rosetta.ErrInvalidParameter] and leaves w untouched, rather than
// producing a truncated document or substituting a default curve.
func (d *Document) Render(w io.Writer) error {
	for i := range d.Rosettas {
		if err := d.Rosettas[i].Curve.Validate(); err != nil {
			return fmt.Errorf("rosetta %d: %w", i, err)
		}
	}

	width, height := d.Width, d.Height
	if width == 0 {
		width = DefaultSize
	}
	if height == 0 {
		height = DefaultSize
	}
	grid := d.Grid
	if grid == (GridStyle{}) {
		grid = DefaultGrid
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, `fill="#222"`)
	canvas.Def()
	fmt.Fprintln(canvas.Writer, glowFilter)
	canvas.DefEnd()
	canvas.Style("text/css", documentStyle)
	writeGrid(canvas, grid, width, height)
	for i := range d.Rosettas {
		if err := d.writeRosetta(canvas, &d.Rosettas[i]); err != nil {
			return fmt.Errorf("rosetta %d: %w", i, err)
		}
	}
	canvas.Rect(0, 0, width, height, `id="black-overlay"`, `fill="black"`)
	canvas.End()
	return nil
}

// WriteFile renders the document to the named file.
func (d *Document) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := d.Render(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGrid(canvas *svg.SVG, grid GridStyle, width, height int) {
	canvas.Def()
	fmt.Fprintf(canvas.Writer,
		"<pattern id=\"grid_pattern\" width=\"%d\" height=\"%d\" patternUnits=\"userSpaceOnUse\">\n",
		grid.Step, grid.Step)
	fmt.Fprintf(canvas.Writer,
		`<path d="M %d 0 L 0 0 0 %d" fill="none" stroke="%s" stroke-width="%g" opacity="%g" />`+"\n",
		grid.Step, grid.Step, grid.Color, grid.StrokeWidth, grid.Opacity)
	fmt.Fprintln(canvas.Writer, "</pattern>")
	canvas.DefEnd()
	canvas.Rect(0, 0, width, height, `fill="url(#grid_pattern)"`)
}

func (d *Document) writeRosetta(canvas *svg.SVG, style *RosettaStyle) error {
	pts, err := style.Curve.ComputePoints()
	if err != nil {
		return err
	}
	data := rosetta.Polyline(pts).SVG(rosetta.SVGOptions{MaxPrecision: d.Precision})

	canvas.Gid("rosettas")
	canvas.Gtransform("rotate(0)")
	canvas.Path(data, `fill="none"`, `stroke-width="2"`, fmt.Sprintf("stroke=%q", style.Color))
	fmt.Fprintf(canvas.Writer,
		`<animateTransform attributeName="transform" attributeType="XML" type="rotate" from="0" to="360" dur="%gs" repeatCount="indefinite" />`+"\n",
		style.Duration.Seconds())
	canvas.Gend()
	canvas.Gend()
	return nil
}
