// Package regex defines the typed syntax tree produced by parsing a regular
// expression. The package contains data types only; trees are built by the
// parser subpackage and consumed by the railroad and text renderers.
//
// A tree is strict: every node is exclusively owned by its parent, there is
// no sharing and no cycles. A tree is built fresh per parse call, consumed
// once by exactly one renderer, then discarded; nothing is mutated after
// construction.
package regex

import (
	"fmt"
)

// Node is a node of the regex syntax tree. Implemented by Element,
// Alternation, Repetition, Terminal, Anchor, Character, and Capture.
type Node interface {
	node()
}

// Element is a sequence of nodes matched one after another.
type Element struct {
	Items []Node
}

// Alternation is a choice between two or more branches.
// The parser only constructs it after seeing a separator,
// so Branches always holds at least two nodes.
type Alternation struct {
	Branches []Node
}

// Repetition wraps a node with a quantifier.
type Repetition struct {
	Quant Quantifier
	Inner Node
}

// Terminal is a literal run of characters matched verbatim.
type Terminal struct {
	Text string
}

// Anchor is a zero-width assertion.
type Anchor struct {
	Kind AnchorKind
}

// Character matches a single character described by its payload.
// Valid payloads are *ClassSet (an explicit [...] class) and *Meta
// (a bare meta character such as "." or "\d"); a bare *Range or
// *Literal payload is a representation-invariant violation rejected
// by the renderers.
type Character struct {
	Value ClassItem
}

// Capture is a named or positionally numbered group.
// Index starts at 1 and follows the left-to-right order of opening
// delimiters. Name is empty for unnamed groups.
type Capture struct {
	Name  string
	Index int
	Inner Node
}

func (*Element) node()     {}
func (*Alternation) node() {}
func (*Repetition) node()  {}
func (*Terminal) node()    {}
func (*Anchor) node()      {}
func (*Character) node()   {}
func (*Capture) node()     {}

// QuantKind discriminates Quantifier values.
type QuantKind int

const (
	// OrMore matches Min or more occurrences ("*", "+", "{n,}").
	OrMore QuantKind = iota
	// ZeroOrOne matches zero or one occurrence ("?").
	ZeroOrOne
	// Exactly matches exactly Min occurrences ("{n}").
	Exactly
	// Between matches from Min to Max occurrences ("{n,m}").
	Between
)

// Quantifier describes how many times a repetition's inner node matches.
// Max is meaningful for Between only.
type Quantifier struct {
	Kind     QuantKind
	Min, Max int
}

// String returns the short form used on diagram repetition bars.
func (q Quantifier) String() string {
	switch q.Kind {
	case OrMore:
		return fmt.Sprintf("%d+", q.Min)
	case Exactly:
		return fmt.Sprintf("%d", q.Min)
	case Between:
		return fmt.Sprintf("%d-%d", q.Min, q.Max)
	default:
		return "?"
	}
}

// AnchorKind enumerates zero-width assertions.
type AnchorKind int

const (
	LineStart AnchorKind = iota
	LineEnd
	WordBoundary
	NotWordBoundary
)

// ClassItem is a member of a character class. Implemented by ClassSet,
// Range, Literal, and Meta. ClassSet only ever appears as a Character
// payload, never nested inside another ClassSet.
type ClassItem interface {
	classItem()
}

// ClassSet is an explicit character class: one of (or, when Negate is
// set, none of) its items.
type ClassSet struct {
	Negate bool
	Items  []ClassItem
}

// Range is a two-endpoint character range. Both endpoints belong to the
// same character class (digit, lower, or upper); the parser enforces the
// pairing but not the ordering.
type Range struct {
	Lo, Hi rune
}

// Literal is a single literal character inside a class.
type Literal struct {
	Ch rune
}

// Meta is a meta character denoting a class of characters.
type Meta struct {
	Kind   MetaKind
	Negate bool
}

func (*ClassSet) classItem() {}
func (*Range) classItem()    {}
func (*Literal) classItem()  {}
func (*Meta) classItem()     {}

// MetaKind enumerates meta character classes.
type MetaKind int

const (
	Word MetaKind = iota
	Digit
	Whitespace
	AnyChar
)
