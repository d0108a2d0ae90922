package railroad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxrail/rxrail"
	"github.com/rxrail/rxrail/parser"
	"github.com/rxrail/rxrail/regex"
)

// render parses src and renders the diagram, failing the test on any error.
func render(t *testing.T, src string) *Diagram {
	t.Helper()
	tree, e := parser.Parse(src)
	require.NoError(t, e, "input %q", src)
	root, e := Generate(tree)
	require.NoError(t, e, "input %q", src)
	d, e := Render(root)
	require.NoError(t, e, "input %q", src)
	return d
}

func TestPrimitiveGeometry(t *testing.T) {
	term := NewTerminal("ab")
	samples := []struct {
		name                 string
		node                 Draw
		entry, height, width int
	}{
		{"start", Start{}, 0, 1, 6},
		{"end", End{}, 0, 1, 4},
		{"terminal", term, 1, 3, 6},
		{"anchor", NewAnchor("LINE START"), 1, 3, 12},
		{"repetition", NewRepetition(term, regex.Quantifier{Kind: regex.Exactly, Min: 2}), 1, 4, 10},
		{"optional", NewOptional(term), 2, 4, 10},
		{"capture", NewCapture(term, "Group 1"), 2, 5, 10},
		{"stack", NewStack(false, []string{"a-z", "0-9"}), 2, 5, 9},
		{"sequence", NewSequence(Start{}, term, End{}), 1, 3, 20},
		{"choice", NewChoice(term, term), 2, 6, 8},
	}

	for _, s := range samples {
		assert.Equal(t, s.entry, s.node.EntryHeight(), "%s entry", s.name)
		assert.Equal(t, s.height, s.node.Height(), "%s height", s.name)
		assert.Equal(t, s.width, s.node.Width(), "%s width", s.name)
	}
}

func TestTerminalDraw(t *testing.T) {
	rows := NewTerminal("abc").Draw()
	assert.Equal(t, []string{
		"┌─────┐",
		"┤ abc ├",
		"└─────┘",
	}, rows)
}

func TestAnchorDraw(t *testing.T) {
	rows := NewAnchor("LINE END").Draw()
	assert.Equal(t, []string{
		"┏━━━━━━━━┓",
		"┨LINE END┠",
		"┗━━━━━━━━┛",
	}, rows)
}

func TestStackDraw(t *testing.T) {
	rows := NewStack(true, []string{"a-z", "0-9", "_"}).Draw()
	assert.Equal(t, []string{
		"None of: ",
		"┌───────┐",
		"│  a-z  │",
		"┤  0-9  ├",
		"│   _   │",
		"└───────┘",
	}, rows)
}

func TestCaptureDraw(t *testing.T) {
	rows := NewCapture(NewTerminal("a"), "yr").Draw()
	assert.Equal(t, []string{
		"╭╌ yr ╌╌╮",
		"┆ ┌───┐ ┆",
		"┼─┤ a ├─┼",
		"┆ └───┘ ┆",
		"╰╌╌╌╌╌╌╌╯",
	}, rows)
}

func TestOptionalDraw(t *testing.T) {
	rows := NewOptional(NewTerminal("a")).Draw()
	assert.Equal(t, []string{
		"╭───────╮",
		"│ ┌───┐ │",
		"┴─┤ a ├─┴",
		"  └───┘  ",
	}, rows)
}

// Two three-row branches stack to height six with the rail entering on the
// floored midpoint row.
func TestChoiceMidpoint(t *testing.T) {
	c := NewChoice(NewTerminal("a"), NewTerminal("b"))
	assert.Equal(t, 6, c.Height())
	assert.Equal(t, 2, c.EntryHeight())
	assert.Equal(t, []string{
		" ┌───┐ ",
		"╭┤ a ├╮",
		"┤└───┘├",
		"│┌───┐│",
		"╰┤ b ├╯",
		" └───┘ ",
	}, c.Draw())
}

func TestAlternationDiagram(t *testing.T) {
	d := render(t, "a|b")
	assert.Equal(t, []string{
		"         ┌───┐       ",
		"        ╭┤ a ├╮      ",
		"START╟──┤└───┘├──╢END",
		"        │┌───┐│      ",
		"        ╰┤ b ├╯      ",
		"         └───┘       ",
	}, d.Rows)
	assert.Equal(t, 21, d.Width)
	assert.Equal(t, 6, d.Height)
}

func TestRepetitionDiagram(t *testing.T) {
	d := render(t, "a{2,4}")
	assert.Equal(t, []string{
		"          ┌───┐        ",
		"START╟──┬─┤ a ├─┬──╢END",
		"        │ └───┘ │      ",
		"        ╰─ 2-4 ─╯      ",
	}, d.Rows)
}

// Bar descriptions and capture labels wider than the box interior are
// clipped to keep every row at the declared width.
func TestLongLabelsTruncated(t *testing.T) {
	rep := NewRepetition(NewTerminal("a"), regex.Quantifier{Kind: regex.Between, Min: 10000, Max: 99999})
	rows := rep.Draw()
	assert.Equal(t, "╰ 10000-╯", rows[len(rows)-1])
	_, e := Render(rep)
	require.NoError(t, e)

	group := NewCapture(NewTerminal("a"), "verylongname")
	assert.Equal(t, "╭ verylo╮", group.Draw()[0])
	_, e = Render(group)
	require.NoError(t, e)
}

// Render validates every row against the declared size; a tree of mixed
// primitives must come out rectangular.
func TestLayoutContract(t *testing.T) {
	samples := []string{
		"a",
		"abc",
		"a|b",
		"^(a|b)+",
		"[^aoeu_0-9]",
		"a(b|c|d)e",
		"a(b|cd{2}|e|f)g",
		"one(two){5}three",
		"(?<year>[0-9]{4})-(?<month>[0-9]{2})",
		`^[a-z0-9._]+@[a-z0-9-]+\.[a-z]{2,4}$`,
		`\bword\B.`,
		"x?y*z+",
	}

	for _, src := range samples {
		d := render(t, src)
		assert.Equal(t, len(d.Rows), d.Height, "input %q", src)
	}
}

func TestGenerateInvalidNode(t *testing.T) {
	_, e := Generate(&regex.Character{Value: &regex.Range{Lo: 'a', Hi: 'z'}})
	require.Error(t, e)
	pe, is := e.(*rxrail.Error)
	require.True(t, is)
	assert.Equal(t, InvalidParsingError, pe.Code)
}

func TestRenderContractViolation(t *testing.T) {
	_, e := Render(badDraw{})
	require.Error(t, e)
	pe, is := e.(*rxrail.Error)
	require.True(t, is)
	assert.Equal(t, LayoutError, pe.Code)
	assert.True(t, strings.Contains(pe.Message, "rows"))
}

// badDraw claims two rows but produces one.
type badDraw struct{}

func (badDraw) EntryHeight() int { return 0 }
func (badDraw) Height() int      { return 2 }
func (badDraw) Width() int       { return 1 }
func (badDraw) Draw() []string   { return []string{"x"} }
