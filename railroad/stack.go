package railroad

// stackMinWidth keeps the box wide enough for the "None of:" label.
const stackMinWidth = 9

// Stack is a single box listing every member of a character class, one per
// row, headed by a label.
//
//	One of:
//	┌─────┐
//	│ a-z │
//	┤ 0-9 ├
//	│  _  │
//	└─────┘
type Stack struct {
	invert bool
	items  []string
}

// NewStack creates a class box. invert switches the label from "One of:"
// to "None of:".
func NewStack(invert bool, items []string) *Stack {
	return &Stack{invert: invert, items: items}
}

// EntryHeight is the vertically centered item row.
func (s *Stack) EntryHeight() int {
	return (len(s.items) + 3) / 2
}

func (s *Stack) Height() int {
	return len(s.items) + 3
}

func (s *Stack) Width() int {
	w := 0
	for _, item := range s.items {
		if c := cells(item); c > w {
			w = c
		}
	}
	w += 2
	if w < stackMinWidth {
		w = stackMinWidth
	}
	return w
}

func (s *Stack) Draw() []string {
	width := s.Width()
	entry := s.EntryHeight()

	label := "One of:"
	if s.invert {
		label = "None of:"
	}
	diagram := []string{label + blank(width-len(label))}

	diagram = append(diagram, string(symTLSqr)+repeat(symHorz, width-2)+string(symTRSqr))
	for _, item := range s.items {
		left := (width - 2 - cells(item)) / 2
		right := width - 2 - cells(item) - left
		l, r := string(symVert), string(symVert)
		if len(diagram) == entry {
			l, r = string(symJLeft), string(symJRight)
		}
		diagram = append(diagram, l+blank(left)+item+blank(right)+r)
	}
	diagram = append(diagram, string(symBLSqr)+repeat(symHorz, width-2)+string(symBRSqr))

	return diagram
}
