package railroad

// Choice stacks branches vertically; the outer rail enters and exits on the
// primary through-line row.
//
//	  ┌───┐
//	╭─┤ A ├─╮
//	│ └───┘ │
//	┤ ┌───┐ ├
//	╰─┤ B ├─╯
//	  └───┘
type Choice struct {
	branches []Draw
}

// NewChoice creates a choice over branches. An alternation always has at
// least two branches.
func NewChoice(branches ...Draw) *Choice {
	return &Choice{branches: branches}
}

// EntryHeight selects the primary through-line row: the floored midpoint of
// the stacked height.
func (c *Choice) EntryHeight() int {
	return (c.Height() - 1) / 2
}

func (c *Choice) Height() int {
	return totalHeight(c.branches)
}

// Width is the widest branch plus the two outer rail columns.
func (c *Choice) Width() int {
	return maxWidth(c.branches) + 2
}

func (c *Choice) Draw() []string {
	var diagram []string
	mid := c.EntryHeight()
	inner := maxWidth(c.branches)

	// Global rows of the first and last branch entry; rails run strictly
	// between them.
	firstEntry := c.branches[0].EntryHeight()
	last := c.branches[len(c.branches)-1]
	lastEntry := c.Height() - last.Height() + last.EntryHeight()

	for i, branch := range c.branches {
		rows := branch.Draw()
		entry := branch.EntryHeight()

		// Center the branch horizontally: floored padding on the left.
		left := (inner - branch.Width()) / 2
		right := inner - branch.Width() - left

		for n, row := range rows {
			g := len(diagram)
			switch {
			case n == entry && i == 0:
				diagram = append(diagram, string(symTLRnd)+repeat(symHorz, left)+row+repeat(symHorz, right)+string(symTRRnd))
			case n == entry && i == len(c.branches)-1:
				diagram = append(diagram, string(symBLRnd)+repeat(symHorz, left)+row+repeat(symHorz, right)+string(symBRRnd))
			case n == entry && g == mid:
				diagram = append(diagram, string(symCross)+repeat(symHorz, left)+row+repeat(symHorz, right)+string(symCross))
			case n == entry:
				diagram = append(diagram, string(symJRight)+repeat(symHorz, left)+row+repeat(symHorz, right)+string(symJLeft))
			case g == mid:
				// The outer rail connects here; nothing joins it inside.
				diagram = append(diagram, string(symJLeft)+blank(left)+row+blank(right)+string(symJRight))
			case g < firstEntry || g > lastEntry:
				diagram = append(diagram, " "+blank(left)+row+blank(right)+" ")
			default:
				diagram = append(diagram, string(symVert)+blank(left)+row+blank(right)+string(symVert))
			}
		}
	}

	return diagram
}
