package railroad

import (
	"github.com/mattn/go-runewidth"
)

// Capture is a dashed box wrapping the inner node, labeled with the
// group's name on the top edge.
//
//	╭╌╌╌ Name ╌╌╌╮
//	┆ ┌────────┐ ┆
//	┼─┤  Node  ├─┼
//	┆ └────────┘ ┆
//	╰╌╌╌╌╌╌╌╌╌╌╌╌╯
type Capture struct {
	inner Draw
	label string
}

// NewCapture wraps inner in a dashed capture box labeled with the group's
// name, or "Group N" for unnamed groups.
func NewCapture(inner Draw, label string) *Capture {
	return &Capture{inner: inner, label: label}
}

func (c *Capture) EntryHeight() int { return c.inner.EntryHeight() + 1 }
func (c *Capture) Height() int      { return c.inner.Height() + 2 }
func (c *Capture) Width() int       { return c.inner.Width() + 4 }

func (c *Capture) Draw() []string {
	rows := c.inner.Draw()
	entry := c.inner.EntryHeight()
	for i, row := range rows {
		if i == entry {
			rows[i] = string(symCross) + string(symHorz) + row + string(symHorz) + string(symCross)
		} else {
			rows[i] = string(symVertD) + " " + row + " " + string(symVertD)
		}
	}

	// Label centered in the top dashed edge.
	interior := c.Width() - 2
	label := runewidth.Truncate(" "+c.label+" ", interior, "")
	left := (interior - cells(label)) / 2
	right := interior - cells(label) - left
	top := string(symTLRnd) + repeat(symHorzD, left) + label + repeat(symHorzD, right) + string(symTRRnd)
	bottom := string(symBLRnd) + repeat(symHorzD, interior) + string(symBRRnd)

	out := make([]string, 0, len(rows)+2)
	out = append(out, top)
	out = append(out, rows...)
	out = append(out, bottom)
	return out
}
