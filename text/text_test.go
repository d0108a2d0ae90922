package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxrail/rxrail/parser"
	"github.com/rxrail/rxrail/regex"
)

// describe parses src and renders its description.
func describe(t *testing.T, src string) *Description {
	t.Helper()
	tree, e := parser.Parse(src)
	require.NoError(t, e, "input %q", src)
	d, e := Render(tree)
	require.NoError(t, e, "input %q", src)
	return d
}

func TestTerminal(t *testing.T) {
	d := describe(t, "abc")
	assert.Equal(t, []string{"EXACTLY:", "    'abc'"}, d.Lines)
	assert.Equal(t, []Highlight{{Line: 0, Start: 0, End: 8}}, d.Highlights)
}

func TestAlternation(t *testing.T) {
	d := describe(t, "a|b")
	assert.Equal(t, []string{"'a' OR 'b'"}, d.Lines)
	assert.Empty(t, d.Highlights)
}

func TestRepetition(t *testing.T) {
	d := describe(t, "a{2}")
	assert.Equal(t, []string{"EXACTLY 2:", "    'a'"}, d.Lines)
	assert.Equal(t, []Highlight{{Line: 0, Start: 0, End: 10}}, d.Highlights)

	d = describe(t, "a{3,}")
	assert.Equal(t, []string{"3 OR MORE:", "    'a'"}, d.Lines)

	d = describe(t, "a{1,5}")
	assert.Equal(t, []string{"BETWEEN 1 AND 5:", "    'a'"}, d.Lines)
}

func TestOptional(t *testing.T) {
	d := describe(t, "a?")
	assert.Equal(t, []string{"0 OR 1:", "    'a'"}, d.Lines)
	assert.Empty(t, d.Highlights)
}

func TestCharacterClass(t *testing.T) {
	d := describe(t, "[a-z0-9_]")
	assert.Equal(t, []string{"MATCH:", " [a-z] [0-9] _"}, d.Lines)
	assert.Equal(t, []Highlight{{Line: 0, Start: 0, End: 6}}, d.Highlights)

	d = describe(t, "[^x]")
	assert.Equal(t, []string{"DON'T MATCH:", " x"}, d.Lines)
	assert.Equal(t, []Highlight{{Line: 0, Start: 0, End: 12}}, d.Highlights)
}

func TestMeta(t *testing.T) {
	d := describe(t, `\d\W.`)
	assert.Equal(t, []string{"Digit", "Non-Word", "Any"}, d.Lines)
}

func TestAnchors(t *testing.T) {
	d := describe(t, `^\b$`)
	assert.Equal(t, []string{"Start", "Word Boundary", "End"}, d.Lines)
}

func TestCapture(t *testing.T) {
	d := describe(t, "(?<year>ab)")
	assert.Equal(t, []string{"GROUP year:", "    'ab'"}, d.Lines)
	assert.Equal(t, []Highlight{{Line: 0, Start: 0, End: 11}}, d.Highlights)

	d = describe(t, "(?:ab)")
	assert.Equal(t, []string{"GROUP 1:", "    'ab'"}, d.Lines)
}

// Nested headers record the span against the first line of their block,
// even though the inner header lands indented on a later line. Editor
// integrations rely on this indexing staying put.
func TestNestedHeaderSpans(t *testing.T) {
	d := describe(t, "(a{2})")
	assert.Equal(t, []string{"GROUP 1:", "    EXACTLY 2:", "    'a'"}, d.Lines)
	assert.Equal(t, []Highlight{
		{Line: 0, Start: 0, End: 10},
		{Line: 0, Start: 0, End: 8},
	}, d.Highlights)
}

func TestInvalidTree(t *testing.T) {
	_, e := Render(&regex.Terminal{Text: "a"})
	require.Error(t, e)
}
