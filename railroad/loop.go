package railroad

import (
	"github.com/mattn/go-runewidth"

	"github.com/rxrail/rxrail/regex"
)

// Repetition wraps a node with a return loop below it. The bottom bar
// carries a description of the repeat count.
//
//	  ┌────────────┐
//	┬─┤ Repetition ├─┬
//	│ └────────────┘ │
//	╰─ 1+ ───────────╯
type Repetition struct {
	inner Draw
	quant regex.Quantifier
}

// NewRepetition wraps inner in a repetition loop. quant must not be
// ZeroOrOne; that shape is an Optional.
func NewRepetition(inner Draw, quant regex.Quantifier) *Repetition {
	if quant.Kind == regex.ZeroOrOne {
		panic("railroad: ZeroOrOne repetition must be an Optional")
	}
	return &Repetition{inner: inner, quant: quant}
}

func (r *Repetition) EntryHeight() int { return r.inner.EntryHeight() }
func (r *Repetition) Height() int      { return r.inner.Height() + 1 }
func (r *Repetition) Width() int       { return r.inner.Width() + 4 }

func (r *Repetition) Draw() []string {
	rows := r.inner.Draw()
	entry := r.EntryHeight()
	for i, row := range rows {
		switch {
		case i == entry:
			rows[i] = string(symJDown) + string(symHorz) + row + string(symHorz) + string(symJDown)
		case i > entry:
			rows[i] = string(symVert) + " " + row + " " + string(symVert)
		default:
			rows[i] = "  " + row + "  "
		}
	}

	// Bottom bar with the centered repeat description. Padding is floored
	// on the left and never negative.
	interior := r.Width() - 2
	desc := runewidth.Truncate(" "+r.quant.String()+" ", interior, "")
	left := (interior - cells(desc)) / 2
	right := interior - cells(desc) - left
	rows = append(rows, string(symBLRnd)+repeat(symHorz, left)+desc+repeat(symHorz, right)+string(symBRRnd))

	return rows
}

// Optional routes a bypass rail above its inner node; the main rail shifts
// down by one row.
//
//	╭──────────────╮
//	│ ┌──────────┐ │
//	┴─┤ Optional ├─┴
//	  └──────────┘
type Optional struct {
	inner Draw
}

// NewOptional wraps inner in a bypass loop.
func NewOptional(inner Draw) *Optional {
	return &Optional{inner: inner}
}

func (o *Optional) EntryHeight() int { return o.inner.EntryHeight() + 1 }
func (o *Optional) Height() int      { return o.inner.Height() + 1 }
func (o *Optional) Width() int       { return o.inner.Width() + 4 }

func (o *Optional) Draw() []string {
	rows := o.inner.Draw()
	entry := o.inner.EntryHeight()
	for i, row := range rows {
		switch {
		case i == entry:
			rows[i] = string(symJUp) + string(symHorz) + row + string(symHorz) + string(symJUp)
		case i < entry:
			rows[i] = string(symVert) + " " + row + " " + string(symVert)
		default:
			rows[i] = "  " + row + "  "
		}
	}

	top := string(symTLRnd) + repeat(symHorz, o.Width()-2) + string(symTRRnd)
	return append([]string{top}, rows...)
}
