// Package railroad lays out and renders railroad syntax diagrams from regex
// syntax trees. Generate maps a regex.Node tree onto a tree of Draw
// primitives; Render invokes the root's Draw to produce the final rows.
package railroad

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Draw is implemented by every diagram primitive.
//
// The contract binding the four methods together: Draw produces exactly
// Height() rows, each exactly Width() display columns wide, and
// EntryHeight() < Height() for every constructible node. Draw is a pure
// function of the node's own state.
type Draw interface {
	// EntryHeight returns the 0-based row, relative to the node's own top
	// edge, at which its connecting rail enters and exits.
	EntryHeight() int

	// Height returns the exact number of rows produced by Draw.
	Height() int

	// Width returns the display-cell width of every produced row.
	Width() int

	// Draw renders the node.
	Draw() []string
}

func maxEntryHeight(nodes []Draw) int {
	m := 0
	for _, n := range nodes {
		if h := n.EntryHeight(); h > m {
			m = h
		}
	}
	return m
}

func maxWidth(nodes []Draw) int {
	m := 0
	for _, n := range nodes {
		if w := n.Width(); w > m {
			m = w
		}
	}
	return m
}

func totalHeight(nodes []Draw) int {
	t := 0
	for _, n := range nodes {
		t += n.Height()
	}
	return t
}

// repeat returns c repeated n times; n below zero counts as zero.
func repeat(c rune, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(c), n)
}

func blank(n int) string {
	return repeat(' ', n)
}

// cells returns the display-cell width of s. Box-drawing glyphs are one
// cell; regexes may carry wide runes.
func cells(s string) int {
	return runewidth.StringWidth(s)
}
