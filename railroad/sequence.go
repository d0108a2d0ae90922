package railroad

// hPadding is the width of the horizontal connector drawn between adjacent
// children of a Sequence.
const hPadding = 2

// Sequence composes elements horizontally along a shared rail.
//
//	┌───┐  ┌───┐  ┌───┐
//	│ A ├──┤ B ├──┤ C │
//	└───┘  └───┘  └───┘
type Sequence struct {
	children []Draw
}

// NewSequence creates a sequence of the given children.
func NewSequence(children ...Draw) *Sequence {
	return &Sequence{children: children}
}

// Push appends a child to the sequence.
func (s *Sequence) Push(child Draw) {
	s.children = append(s.children, child)
}

// EntryHeight of a sequence is the deepest entry row among its children:
// composing aligns every child's rail onto that row.
func (s *Sequence) EntryHeight() int {
	return maxEntryHeight(s.children)
}

func (s *Sequence) Height() int {
	if len(s.children) == 0 {
		return 1
	}
	// Rows above the rail come from the deepest entry; rows below from the
	// tallest child body under its own entry row.
	drop := 1
	for _, c := range s.children {
		if d := c.Height() - c.EntryHeight(); d > drop {
			drop = d
		}
	}
	return maxEntryHeight(s.children) + drop
}

func (s *Sequence) Width() int {
	if len(s.children) == 0 {
		return 0
	}
	w := hPadding * (len(s.children) - 1)
	for _, c := range s.children {
		w += c.Width()
	}
	return w
}

func (s *Sequence) Draw() []string {
	diagram := []string{""}
	exit := 0 // row of the current right-edge rail

	for n, child := range s.children {
		rows := child.Draw()
		entry := child.EntryHeight()

		// Align the child's entry row with the running exit row. A deeper
		// child pads the accumulated diagram's top and raises the exit; a
		// shallower child pads its own top instead.
		if entry > exit {
			pad := blank(cells(diagram[0]))
			for i := exit; i < entry; i++ {
				diagram = append([]string{pad}, diagram...)
			}
			exit = entry
		} else if entry < exit {
			pad := blank(cells(rows[0]))
			for i := entry; i < exit; i++ {
				rows = append([]string{pad}, rows...)
			}
		}

		// Equalize row counts at the bottom.
		for len(rows) < len(diagram) {
			rows = append(rows, blank(cells(rows[0])))
		}
		for len(diagram) < len(rows) {
			diagram = append(diagram, blank(cells(diagram[0])))
		}

		// Connector between children: a horizontal rail on the exit row,
		// blank padding elsewhere.
		if n > 0 {
			line := repeat(symHorz, hPadding)
			pad := blank(hPadding)
			for i := range diagram {
				if i == exit {
					diagram[i] += line
				} else {
					diagram[i] += pad
				}
			}
		}

		for i := range diagram {
			diagram[i] += rows[i]
		}
	}

	return diagram
}
