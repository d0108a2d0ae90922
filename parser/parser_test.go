package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxrail/rxrail"
	"github.com/rxrail/rxrail/regex"
)

// dump flattens a tree into a compact s-expression for comparison.
func dump(n regex.Node) string {
	switch t := n.(type) {
	case *regex.Element:
		s := "El("
		for i, item := range t.Items {
			if i > 0 {
				s += " "
			}
			s += dump(item)
		}
		return s + ")"
	case *regex.Alternation:
		s := "Alt("
		for i, b := range t.Branches {
			if i > 0 {
				s += " "
			}
			s += dump(b)
		}
		return s + ")"
	case *regex.Repetition:
		return "Rep(" + t.Quant.String() + " " + dump(t.Inner) + ")"
	case *regex.Terminal:
		return "'" + t.Text + "'"
	case *regex.Anchor:
		return anchorDump(t.Kind)
	case *regex.Character:
		return "Ch(" + classDump(t.Value) + ")"
	case *regex.Capture:
		return fmt.Sprintf("Cap(%q %d %s)", t.Name, t.Index, dump(t.Inner))
	default:
		return fmt.Sprintf("?%T", n)
	}
}

func classDump(item regex.ClassItem) string {
	switch v := item.(type) {
	case *regex.ClassSet:
		s := "["
		if v.Negate {
			s += "^"
		}
		for i, it := range v.Items {
			if i > 0 {
				s += " "
			}
			s += classDump(it)
		}
		return s + "]"
	case *regex.Range:
		return fmt.Sprintf("%c-%c", v.Lo, v.Hi)
	case *regex.Literal:
		return string(v.Ch)
	case *regex.Meta:
		return metaDump(v)
	default:
		return fmt.Sprintf("?%T", item)
	}
}

func metaDump(m *regex.Meta) string {
	letters := map[regex.MetaKind]string{
		regex.Word:       "w",
		regex.Digit:      "d",
		regex.Whitespace: "s",
	}
	letter, ok := letters[m.Kind]
	if !ok {
		return "."
	}
	if m.Negate {
		return "!" + letter
	}
	return letter
}

func anchorDump(kind regex.AnchorKind) string {
	switch kind {
	case regex.LineStart:
		return "^"
	case regex.LineEnd:
		return "$"
	case regex.WordBoundary:
		return "WB"
	default:
		return "!WB"
	}
}

func TestParse(t *testing.T) {
	samples := []struct{ src, want string }{
		{"a", "El('a')"},
		{"abc", "El('abc')"},
		{"a|b", "Alt(El('a') El('b'))"},
		{"a|b|c", "Alt(El('a') El('b') El('c'))"},
		{"a*", "El(Rep(0+ 'a'))"},
		{"a+", "El(Rep(1+ 'a'))"},
		{"a?", "El(Rep(? 'a'))"},
		{"a{8}", "El(Rep(8 'a'))"},
		{"a{5,}", "El(Rep(5+ 'a'))"},
		{"a{1,10}", "El(Rep(1-10 'a'))"},
		{"ab+", "El(El('a' Rep(1+ 'b')))"},
		{"^a$", "El(^ 'a' $)"},
		{"a.b", "El('a' Ch(.) 'b')"},
		{`\d`, "El(Ch(d))"},
		{`\D\W\S`, "El(Ch(!d) Ch(!w) Ch(!s))"},
		{`\ba\B`, "El(WB 'a' !WB)"},
		{`\.`, "El('.')"},
		{`a\|b`, "El('a|b')"},
		{"[a-z0-9]", "El(Ch([a-z 0-9]))"},
		{"[^aoeu_0-9]", "El(Ch([^a o e u _ 0-9]))"},
		{`[\d,]`, "El(Ch([d ,]))"},
		{"[a-]", "El(Ch([a -]))"},
		{"(a)", `El(Cap("" 1 El('a')))`},
		{"(?:a)", `El(Cap("" 1 El('a')))`},
		{"(?<name>a)", `El(Cap("name" 1 El('a')))`},
		{"(a(b))", `El(Cap("" 1 El('a' Cap("" 2 El('b')))))`},
		{"(a)(b)", `El(Cap("" 1 El('a')) Cap("" 2 El('b')))`},
		{"(a|b)c", `El(Cap("" 1 Alt(El('a') El('b'))) 'c')`},
		{"one(two){5}three", `El('one' Rep(5 Cap("" 1 El('two'))) 'three')`},
	}

	for _, s := range samples {
		tree, e := Parse(s.src)
		require.NoError(t, e, "input %q", s.src)
		assert.Equal(t, s.want, dump(tree), "input %q", s.src)
	}
}

func TestParseCustomEscape(t *testing.T) {
	tree, e := NewWithOptions(`%d\`, Options{Escape: '%'}).Parse()
	require.NoError(t, e)
	assert.Equal(t, `El(Ch(d) '\')`, dump(tree))
}

// checkErrorCode parses each sample and expects the given error code.
func checkErrorCode(t *testing.T, samples []string, code int) {
	t.Helper()
	for _, src := range samples {
		_, e := Parse(src)
		require.Error(t, e, "input %q", src)
		pe, is := e.(*rxrail.Error)
		require.True(t, is, "input %q: expected *rxrail.Error, got %v", src, e)
		assert.Equal(t, code, pe.Code, "input %q: %s", src, pe.Message)
	}
}

func TestCharacterRange(t *testing.T) {
	samples := []string{
		"[a-9]",
		"[a-Z]",
		"[0-z]",
		"[_-a]",
	}
	checkErrorCode(t, samples, CharacterRangeError)
}

func TestRepetitionValue(t *testing.T) {
	samples := []string{
		"a{x}",
		"a{-1}",
		"a{1,2,3}",
		"a{1,x}",
	}
	checkErrorCode(t, samples, RepetitionValueError)
}

func TestUnmatchedDelim(t *testing.T) {
	samples := []string{
		"(a",
		"a)",
		"[a",
		"a]",
		"a}",
		"a{1",
		"a{1,2",
		"(?<n>a",
		"(?<na",
	}
	checkErrorCode(t, samples, UnmatchedDelimError)
}

func TestEmptyClass(t *testing.T) {
	samples := []string{
		"[]",
		"[^]",
	}
	checkErrorCode(t, samples, EmptyClassError)
}

func TestCaptureName(t *testing.T) {
	samples := []string{
		"(?<>a)",
		"(?=a)",
		"(?a)",
	}
	checkErrorCode(t, samples, CaptureNameError)
}

func TestDanglingEscape(t *testing.T) {
	samples := []string{
		`a\`,
		`[a\`,
	}
	checkErrorCode(t, samples, DanglingEscapeError)
}

func TestUnexpectedChar(t *testing.T) {
	samples := []string{
		"*",
		"+a",
		"{2}",
	}
	checkErrorCode(t, samples, UnexpectedCharError)
}

func TestErrorPosition(t *testing.T) {
	_, e := Parse("ab[x-$]")
	require.Error(t, e)
	pe, is := e.(*rxrail.Error)
	require.True(t, is)
	assert.Equal(t, 3, pe.Pos)
	assert.Contains(t, e.Error(), "at position 3")
}
