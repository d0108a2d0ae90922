package railroad

import (
	"fmt"

	"github.com/rxrail/rxrail"
	"github.com/rxrail/rxrail/regex"
)

// Error codes used by railroad:
const (
	// InvalidParsingError indicates a syntax tree shape the generator does
	// not expect, e.g. a Character node whose payload is a bare range or
	// literal. This is a parser/generator bug, not bad user input.
	InvalidParsingError = rxrail.DiagramErrors + iota

	// LayoutError indicates a drawn diagram violating the Draw contract.
	// This is a primitive bug, not bad user input.
	LayoutError
)

func invalidParsingError(node any) *rxrail.Error {
	return rxrail.FormatError(InvalidParsingError, "invalid parsing: unexpected %T node", node)
}

// Generate maps the syntax tree structurally onto a Draw tree wrapped in
// Start and End markers.
func (r *Renderer) Generate(tree regex.Node) (Draw, error) {
	seq := NewSequence(Start{})
	switch t := tree.(type) {
	case *regex.Element:
		for _, item := range t.Items {
			n, e := r.generateElement(item)
			if e != nil {
				return nil, e
			}
			seq.Push(n)
		}
	default:
		n, e := r.generateElement(tree)
		if e != nil {
			return nil, e
		}
		seq.Push(n)
	}
	seq.Push(End{})
	return seq, nil
}

func (r *Renderer) generateElement(tree regex.Node) (Draw, error) {
	r.log.WithField("node", fmt.Sprintf("%T", tree)).Debug("generating diagram element")

	switch t := tree.(type) {
	case *regex.Terminal:
		return NewTerminal(t.Text), nil

	case *regex.Repetition:
		inner, e := r.generateElement(t.Inner)
		if e != nil {
			return nil, e
		}
		if t.Quant.Kind == regex.ZeroOrOne {
			return NewOptional(inner), nil
		}
		return NewRepetition(inner, t.Quant), nil

	case *regex.Alternation:
		branches := make([]Draw, 0, len(t.Branches))
		for _, b := range t.Branches {
			n, e := r.generateElement(b)
			if e != nil {
				return nil, e
			}
			branches = append(branches, n)
		}
		return NewChoice(branches...), nil

	case *regex.Element:
		seq := NewSequence()
		for _, item := range t.Items {
			n, e := r.generateElement(item)
			if e != nil {
				return nil, e
			}
			seq.Push(n)
		}
		return seq, nil

	case *regex.Anchor:
		return NewAnchor(anchorLabel(t.Kind)), nil

	case *regex.Character:
		switch v := t.Value.(type) {
		case *regex.ClassSet:
			items := make([]string, 0, len(v.Items))
			for _, item := range v.Items {
				label, e := classLabel(item)
				if e != nil {
					return nil, e
				}
				items = append(items, label)
			}
			return NewStack(v.Negate, items), nil
		case *regex.Meta:
			return NewAnchor(metaLabel(v)), nil
		default:
			return nil, invalidParsingError(v)
		}

	case *regex.Capture:
		inner, e := r.generateElement(t.Inner)
		if e != nil {
			return nil, e
		}
		label := t.Name
		if label == "" {
			label = fmt.Sprintf("Group %d", t.Index)
		}
		return NewCapture(inner, label), nil

	default:
		return nil, invalidParsingError(tree)
	}
}

// classLabel renders one class member for a Stack row.
func classLabel(item regex.ClassItem) (string, error) {
	switch v := item.(type) {
	case *regex.Range:
		return fmt.Sprintf("%c-%c", v.Lo, v.Hi), nil
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
		return "LINE START"
	case regex.LineEnd:
		return "LINE END"
	case regex.WordBoundary:
		return "WORD BOUNDARY"
	default:
		return "NON-WORD BOUNDARY"
	}
}
