// Package parser converts regular expression text into a regex.Node tree.
//
// The parser is a single-pass predictive recursive descent parser: one
// monotonic cursor into the input, lookahead of at most two runes (the
// second endpoint of a class range and the rune following an escape), and
// no backtracking. Grammar:
//
//	alternation := element ('|' element)*
//	element     := repetition*
//	repetition  := group ('*' | '+' | '?' | '{' quantifier '}')?
//	group       := '(' capture-prefix? alternation ')' | '[' class ']' |
//	               escape | '^' | '$' | '.' | literal-run
//
// A Parser instance is single-use; parsing consumes its cursor. Distinct
// instances share no state and may run concurrently.
package parser

import (
	"github.com/rxrail/rxrail/regex"
)

// DefaultEscape is the escape character used unless Options says otherwise.
const DefaultEscape = '\\'

// Options adjusts parsing for the source language the regex was found in.
// Only the escape character is consulted by the parser; everything else in
// a language's string format belongs to the extract subpackage.
type Options struct {
	// Escape is the language's escape character. Zero value means DefaultEscape.
	Escape rune
}

// Parser holds the cursor state of a single parse.
type Parser struct {
	text   []rune
	pos    int
	escape rune
	groups int
}

// New creates a parser for text using DefaultEscape.
func New(text string) *Parser {
	return NewWithOptions(text, Options{})
}

// NewWithOptions creates a parser for text with explicit options.
func NewWithOptions(text string, opts Options) *Parser {
	esc := opts.Escape
	if esc == 0 {
		esc = DefaultEscape
	}
	return &Parser{text: []rune(text), escape: esc}
}

// Parse is a convenience wrapper: New(text).Parse().
func Parse(text string) (regex.Node, error) {
	return New(text).Parse()
}

// Parse consumes the whole input and returns the syntax tree.
// A failed parse returns a *rxrail.Error and no partial tree.
func (p *Parser) Parse() (regex.Node, error) {
	n, e := p.alternation()
	if e != nil {
		return nil, e
	}
	if p.more() {
		// Only an unbalanced ')' can stop alternation early.
		return nil, unmatchedError(p.pos, p.peek())
	}
	return n, nil
}

func (p *Parser) alternation() (regex.Node, error) {
	first, e := p.element()
	if e != nil {
		return nil, e
	}
	branches := []regex.Node{first}
	for p.more() && p.peek() == '|' {
		p.next()
		b, e := p.element()
		if e != nil {
			return nil, e
		}
		branches = append(branches, b)
	}
	if len(branches) == 1 {
		return first, nil
	}
	return &regex.Alternation{Branches: branches}, nil
}

func (p *Parser) element() (regex.Node, error) {
	var items []regex.Node
	for p.more() && p.peek() != ')' && p.peek() != '|' {
		n, e := p.repetition()
		if e != nil {
			return nil, e
		}
		items = append(items, n)
	}
	return &regex.Element{Items: items}, nil
}

func (p *Parser) repetition() (regex.Node, error) {
	atom, e := p.group()
	if e != nil {
		return nil, e
	}
	if !p.more() {
		return atom, nil
	}

	var q regex.Quantifier
	switch p.peek() {
	case '*':
		p.next()
		q = regex.Quantifier{Kind: regex.OrMore, Min: 0}
	case '+':
		p.next()
		q = regex.Quantifier{Kind: regex.OrMore, Min: 1}
	case '?':
		p.next()
		q = regex.Quantifier{Kind: regex.ZeroOrOne}
	case '{':
		q, e = p.quantifier()
		if e != nil {
			return nil, e
		}
	default:
		return atom, nil
	}

	// A quantifier binds one atom. When the preceding atom is a literal run
	// of several characters, only its final character repeats.
	if t, ok := atom.(*regex.Terminal); ok {
		runes := []rune(t.Text)
		if len(runes) > 1 {
			head := &regex.Terminal{Text: string(runes[:len(runes)-1])}
			last := &regex.Terminal{Text: string(runes[len(runes)-1:])}
			return &regex.Element{Items: []regex.Node{
				head,
				&regex.Repetition{Quant: q, Inner: last},
			}}, nil
		}
	}
	return &regex.Repetition{Quant: q, Inner: atom}, nil
}

// quantifier parses the body of {...}. Digits are accumulated positionally;
// any other character except a single comma is a repetition-value error.
func (p *Parser) quantifier() (regex.Quantifier, error) {
	var q regex.Quantifier
	open := p.pos
	if e := p.consume('{'); e != nil {
		return q, e
	}

	min, sawComma := 0, false
	for p.more() && p.peek() != '}' {
		c := p.peek()
		switch {
		case c >= '0' && c <= '9':
			p.next()
			min = min*10 + int(c-'0')
		case c == ',':
			p.next()
			sawComma = true
		default:
			return q, repetitionError(p.pos, c)
		}
		if sawComma {
			break
		}
	}

	max, sawMax := 0, false
	for p.more() && p.peek() != '}' {
		c := p.peek()
		if c < '0' || c > '9' {
			return q, repetitionError(p.pos, c)
		}
		p.next()
		max = max*10 + int(c-'0')
		sawMax = true
	}

	if !p.more() {
		return q, unmatchedError(open, '{')
	}
	if e := p.consume('}'); e != nil {
		return q, e
	}

	switch {
	case sawMax:
		return regex.Quantifier{Kind: regex.Between, Min: min, Max: max}, nil
	case sawComma:
		return regex.Quantifier{Kind: regex.OrMore, Min: min}, nil
	default:
		return regex.Quantifier{Kind: regex.Exactly, Min: min}, nil
	}
}

func (p *Parser) group() (regex.Node, error) {
	switch c := p.peek(); {
	case c == '(':
		return p.captureGroup()
	case c == '[':
		return p.class()
	case c == '^':
		p.next()
		return &regex.Anchor{Kind: regex.LineStart}, nil
	case c == '$':
		p.next()
		return &regex.Anchor{Kind: regex.LineEnd}, nil
	case c == '.':
		p.next()
		return &regex.Character{Value: &regex.Meta{Kind: regex.AnyChar}}, nil
	case c == p.escape:
		if isMetaEscape(p.peekAt(1)) {
			return p.escapeAtom()
		}
		return p.literalRun()
	case isSpecial(c):
		// ']' or '}' without an opener, or a quantifier with nothing to repeat.
		if c == ']' || c == '}' {
			return nil, unmatchedError(p.pos, c)
		}
		return nil, unexpectedCharError(p.pos, c)
	default:
		return p.literalRun()
	}
}

// captureGroup parses '(' capture-prefix? alternation ')'. Every group is a
// capture; indices follow the left-to-right order of opening delimiters,
// starting at 1.
func (p *Parser) captureGroup() (regex.Node, error) {
	open := p.pos
	if e := p.consume('('); e != nil {
		return nil, e
	}

	name := ""
	if p.more() && p.peek() == '?' {
		p.next()
		if !p.more() {
			return nil, unmatchedError(open, '(')
		}
		switch p.peek() {
		case ':':
			p.next()
		case '<':
			lt := p.pos
			p.next()
			var runes []rune
			for p.more() && p.peek() != '>' {
				runes = append(runes, p.next())
			}
			if !p.more() {
				return nil, unmatchedError(lt, '<')
			}
			if len(runes) == 0 {
				return nil, captureNameError(p.pos, '>')
			}
			p.next()
			name = string(runes)
		default:
			return nil, captureNameError(p.pos, p.peek())
		}
	}

	p.groups++
	index := p.groups

	inner, e := p.alternation()
	if e != nil {
		return nil, e
	}
	if !p.more() || p.peek() != ')' {
		return nil, unmatchedError(open, '(')
	}
	p.next()
	return &regex.Capture{Name: name, Index: index, Inner: inner}, nil
}

// class parses '[' ... ']'. A leading '^' negates the whole class. Each
// member is a literal, an escape-meta, or a two-endpoint range whose
// endpoints must belong to the same character class.
func (p *Parser) class() (regex.Node, error) {
	open := p.pos
	if e := p.consume('['); e != nil {
		return nil, e
	}

	negate := false
	if p.more() && p.peek() == '^' {
		p.next()
		negate = true
	}
	if p.more() && p.peek() == ']' {
		return nil, emptyClassError(open)
	}

	var items []regex.ClassItem
	for p.more() && p.peek() != ']' {
		if p.peek() == p.escape {
			p.next()
			if !p.more() {
				return nil, danglingEscapeError(p.pos)
			}
			items = append(items, classEscape(p.next()))
			continue
		}

		loPos := p.pos
		lo := p.next()
		if p.more() && p.peek() == '-' && p.peekAt(1) >= 0 && p.peekAt(1) != ']' {
			p.next()
			hi := p.next()
			lc, hc := rangeClass(lo), rangeClass(hi)
			if lc < 0 || lc != hc {
				return nil, rangeError(loPos, lo, hi)
			}
			items = append(items, &regex.Range{Lo: lo, Hi: hi})
			continue
		}
		items = append(items, &regex.Literal{Ch: lo})
	}

	if !p.more() {
		return nil, unmatchedError(open, '[')
	}
	p.next()
	return &regex.Character{Value: &regex.ClassSet{Negate: negate, Items: items}}, nil
}

// escapeAtom parses an escape that denotes a meta character or a word
// boundary anchor. Other escapes are literal and handled by literalRun.
func (p *Parser) escapeAtom() (regex.Node, error) {
	if e := p.consume(p.escape); e != nil {
		return nil, e
	}
	c := p.next()
	switch c {
	case 'b':
		return &regex.Anchor{Kind: regex.WordBoundary}, nil
	case 'B':
		return &regex.Anchor{Kind: regex.NotWordBoundary}, nil
	default:
		return &regex.Character{Value: classEscape(c)}, nil
	}
}

// literalRun copies characters verbatim until a special character is
// reached. An escape character consumes itself and keeps the following
// character literally, unless that character is a meta escape, which ends
// the run so group can dispatch on it.
func (p *Parser) literalRun() (regex.Node, error) {
	var runes []rune
	for p.more() {
		c := p.peek()
		if c == p.escape {
			n := p.peekAt(1)
			if n < 0 {
				return nil, danglingEscapeError(p.pos)
			}
			if isMetaEscape(n) {
				break
			}
			p.next()
			runes = append(runes, p.next())
			continue
		}
		if isSpecial(c) {
			break
		}
		runes = append(runes, p.next())
	}
	if len(runes) == 0 {
		return nil, unexpectedCharError(p.pos, p.peek())
	}
	return &regex.Terminal{Text: string(runes)}, nil
}

func classEscape(c rune) regex.ClassItem {
	switch c {
	case 'd':
		return &regex.Meta{Kind: regex.Digit}
	case 'D':
		return &regex.Meta{Kind: regex.Digit, Negate: true}
	case 'w':
		return &regex.Meta{Kind: regex.Word}
	case 'W':
		return &regex.Meta{Kind: regex.Word, Negate: true}
	case 's':
		return &regex.Meta{Kind: regex.Whitespace}
	case 'S':
		return &regex.Meta{Kind: regex.Whitespace, Negate: true}
	default:
		return &regex.Literal{Ch: c}
	}
}

// isMetaEscape reports whether the escape sequence formed with c denotes a
// meta character class or a word boundary anchor rather than a literal.
func isMetaEscape(c rune) bool {
	switch c {
	case 'd', 'D', 'w', 'W', 's', 'S', 'b', 'B':
		return true
	}
	return false
}

func isSpecial(c rune) bool {
	switch c {
	case '(', ')', '[', ']', '+', '*', '?', '$', '|', '^', '{', '}', '.':
		return true
	}
	return false
}

// rangeClass assigns a range endpoint to its character class:
// 0 for digits, 1 for lower case, 2 for upper case, -1 otherwise.
func rangeClass(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return 0
	case c >= 'a' && c <= 'z':
		return 1
	case c >= 'A' && c <= 'Z':
		return 2
	default:
		return -1
	}
}

func (p *Parser) more() bool {
	return p.pos < len(p.text)
}

func (p *Parser) peek() rune {
	if p.pos >= len(p.text) {
		return -1
	}
	return p.text[p.pos]
}

func (p *Parser) peekAt(n int) rune {
	if p.pos+n >= len(p.text) {
		return -1
	}
	return p.text[p.pos+n]
}

func (p *Parser) next() rune {
	c := p.text[p.pos]
	p.pos++
	return c
}

func (p *Parser) consume(c rune) error {
	if !p.more() || p.peek() != c {
		return iteratorError(p.pos, p.peek(), c)
	}
	p.pos++
	return nil
}
