package railroad

// Terminal is a boxed literal.
//
//	┌──────────┐
//	┤ Terminal ├
//	└──────────┘
type Terminal struct {
	text string
}

// NewTerminal creates a terminal box holding text.
func NewTerminal(text string) *Terminal {
	return &Terminal{text: text}
}

func (t *Terminal) EntryHeight() int { return 1 }
func (t *Terminal) Height() int      { return 3 }

func (t *Terminal) Width() int {
	return cells(t.text) + 4
}

func (t *Terminal) Draw() []string {
	inner := t.Width() - 2
	return []string{
		string(symTLSqr) + repeat(symHorz, inner) + string(symTRSqr),
		string(symJLeft) + " " + t.text + " " + string(symJRight),
		string(symBLSqr) + repeat(symHorz, inner) + string(symBRSqr),
	}
}

// Anchor is a zero-width assertion, drawn with bold box glyphs to visually
// separate it from a literal match.
//
//	┏━━━━━━━━┓
//	┨ Anchor ┠
//	┗━━━━━━━━┛
type Anchor struct {
	text string
}

// NewAnchor creates an anchor box holding text.
func NewAnchor(text string) *Anchor {
	return &Anchor{text: text}
}

func (a *Anchor) EntryHeight() int { return 1 }
func (a *Anchor) Height() int      { return 3 }

func (a *Anchor) Width() int {
	return cells(a.text) + 2
}

func (a *Anchor) Draw() []string {
	inner := a.Width() - 2
	return []string{
		string(symTLSqrB) + repeat(symHorzB, inner) + string(symTRSqrB),
		string(symJLeftB) + a.text + string(symJRightB),
		string(symBLSqrB) + repeat(symHorzB, inner) + string(symBRSqrB),
	}
}
