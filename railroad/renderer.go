package railroad

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/rxrail/rxrail"
	"github.com/rxrail/rxrail/regex"
)

// Diagram is the rendered output: equal-width rows plus the derived display
// size, ready for placement in an editor floating window.
type Diagram struct {
	Rows          []string
	Width, Height int
}

// Renderer generates and renders railroad diagrams. A Renderer holds no
// mutable state; one instance may serve concurrent calls.
type Renderer struct {
	log logrus.FieldLogger
}

// New creates a renderer that discards its debug log.
func New() *Renderer {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Renderer{log: l}
}

// NewWithLogger creates a renderer tracing layout steps to log.
func NewWithLogger(log logrus.FieldLogger) *Renderer {
	return &Renderer{log: log}
}

// Render draws the Draw tree and verifies the layout contract: exactly
// Height() rows of exactly Width() cells each. A violation is a primitive
// bug reported as a layout error, never a partial diagram.
func (r *Renderer) Render(root Draw) (*Diagram, error) {
	rows := root.Draw()
	width, height := root.Width(), root.Height()

	if len(rows) != height {
		return nil, rxrail.FormatError(LayoutError, "layout produced %d rows, expected %d", len(rows), height)
	}
	for i, row := range rows {
		if cells(row) != width {
			return nil, rxrail.FormatError(LayoutError, "row %d is %d cells wide, expected %d", i, cells(row), width)
		}
		r.log.WithField("row", i).Debug(row)
	}

	r.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("rendered diagram")
	return &Diagram{Rows: rows, Width: width, Height: height}, nil
}

// Generate maps tree onto a Draw tree using a discarding renderer.
func Generate(tree regex.Node) (Draw, error) {
	return New().Generate(tree)
}

// Render draws root using a discarding renderer.
func Render(root Draw) (*Diagram, error) {
	return New().Render(root)
}
