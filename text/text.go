// Package text converts a regex syntax tree into an ordered list of
// natural-language lines plus highlight spans marking structural headers.
// It shares the syntax tree with the railroad renderer but none of the
// layout machinery; output is plain indented text.
package text

import (
	"fmt"
	"strings"

	"github.com/rxrail/rxrail"
	"github.com/rxrail/rxrail/regex"
)

// Error codes used by text:
const (
	// InvalidParsingError indicates a syntax tree shape the renderer does
	// not expect. This is a parser bug, not bad user input.
	InvalidParsingError = rxrail.TextErrors + iota
)

func invalidParsingError(node any) *rxrail.Error {
	return rxrail.FormatError(InvalidParsingError, "invalid parsing: unexpected %T node", node)
}

// Highlight marks a header span for syntax coloring.
type Highlight struct {
	// Line is the 0-based index into Description.Lines.
	Line int
	// Start and End are 0-based column bounds, End exclusive.
	Start, End int
}

// Description is the rendered output of the text path.
type Description struct {
	Lines      []string
	Highlights []Highlight
}

// header records a highlighted structural header starting a new line.
func (d *Description) header(msg string) {
	d.Highlights = append(d.Highlights, Highlight{Line: len(d.Lines), Start: 0, End: len(msg)})
}

// Render converts the tree into description lines and highlight spans.
// A failed render returns an error and no partial output.
func Render(tree regex.Node) (*Description, error) {
	d := &Description{}
	switch t := tree.(type) {
	case *regex.Element:
		for _, item := range t.Items {
			if term, ok := item.(*regex.Terminal); ok {
				d.header("EXACTLY:")
				d.Lines = append(d.Lines, "EXACTLY:", "    '"+term.Text+"'")
				continue
			}
			msg, e := renderElement(item, d)
			if e != nil {
				return nil, e
			}
			d.Lines = append(d.Lines, strings.Split(msg, "\n")...)
		}
	case *regex.Alternation:
		msg, e := renderElement(t, d)
		if e != nil {
			return nil, e
		}
		d.Lines = append(d.Lines, msg)
	default:
		return nil, invalidParsingError(tree)
	}
	return d, nil
}

func renderElement(tree regex.Node, d *Description) (string, error) {
	switch t := tree.(type) {
	case *regex.Anchor:
		return anchorLabel(t.Kind), nil

	case *regex.Element:
		var sb strings.Builder
		for _, item := range t.Items {
			msg, e := renderElement(item, d)
			if e != nil {
				return "", e
			}
			sb.WriteString(msg)
		}
		return sb.String(), nil

	case *regex.Repetition:
		inner, e := renderElement(t.Inner, d)
		if e != nil {
			return "", e
		}
		var msg string
		switch t.Quant.Kind {
		case regex.ZeroOrOne:
			return "0 OR 1:\n    " + inner, nil
		case regex.OrMore:
			msg = fmt.Sprintf("%d OR MORE:", t.Quant.Min)
		case regex.Exactly:
			msg = fmt.Sprintf("EXACTLY %d:", t.Quant.Min)
		default:
			msg = fmt.Sprintf("BETWEEN %d AND %d:", t.Quant.Min, t.Quant.Max)
		}
		d.header(msg)
		return msg + "\n    " + inner, nil

	case *regex.Alternation:
		parts := make([]string, 0, len(t.Branches))
		for _, b := range t.Branches {
			msg, e := renderElement(b, d)
			if e != nil {
				return "", e
			}
			parts = append(parts, msg)
		}
		return strings.Join(parts, " OR "), nil

	case *regex.Character:
		switch v := t.Value.(type) {
		case *regex.ClassSet:
			header := "MATCH:"
			if v.Negate {
				header = "DON'T MATCH:"
			}
			d.header(header)
			msg := header + "\n"
			for _, item := range v.Items {
				label, e := classLabel(item)
				if e != nil {
					return "", e
				}
				msg += " " + label
			}
			return msg, nil
		case *regex.Meta:
			return metaLabel(v), nil
		default:
			return "", invalidParsingError(v)
		}

	case *regex.Terminal:
		return "'" + t.Text + "'", nil

	case *regex.Capture:
		inner, e := renderElement(t.Inner, d)
		if e != nil {
			return "", e
		}
		var msg string
		if t.Name != "" {
			msg = fmt.Sprintf("GROUP %s:", t.Name)
		} else {
			msg = fmt.Sprintf("GROUP %d:", t.Index)
		}
		d.header(msg)
		return msg + "\n    " + inner, nil

	default:
		return "", invalidParsingError(tree)
	}
}

func classLabel(item regex.ClassItem) (string, error) {
	switch v := item.(type) {
	case *regex.Range:
		return fmt.Sprintf("[%c-%c]", v.Lo, v.Hi), nil
	case *regex.Literal:
		return string(v.Ch), nil
	case *regex.Meta:
		return metaLabel(v), nil
	default:
		return "", invalidParsingError(item)
	}
}

func metaLabel(m *regex.Meta) string {
	var word string
	switch m.Kind {
	case regex.Word:
		word = "Word"
	case regex.Digit:
		word = "Digit"
	case regex.Whitespace:
		word = "Whitespace"
	default:
		return "Any"
	}
	if m.Negate {
		return "Non-" + word
	}
	return word
}

func anchorLabel(kind regex.AnchorKind) string {
	switch kind {
	case regex.LineStart:
		return "Start"
	case regex.LineEnd:
		return "End"
	case regex.WordBoundary:
		return "Word Boundary"
	default:
		return "Non-Word Boundary"
	}
}
