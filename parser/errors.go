package parser

import (
	"github.com/rxrail/rxrail"
)

// Error codes used by parser:
const (
	// CharacterRangeError indicates a class range whose endpoints belong to
	// different character classes, e.g. [a-9].
	CharacterRangeError = rxrail.SyntaxErrors + iota

	// RepetitionValueError indicates a non-digit, non-comma character inside {}.
	RepetitionValueError

	// UnmatchedDelimError indicates a missing or unexpected ), ], or }.
	UnmatchedDelimError

	// EmptyClassError indicates an empty character class [].
	EmptyClassError

	// CaptureNameError indicates a malformed capture prefix after "(?".
	CaptureNameError

	// DanglingEscapeError indicates an escape character at the end of input.
	DanglingEscapeError

	// UnexpectedCharError indicates a special character where an atom was expected,
	// e.g. a quantifier with nothing to repeat.
	UnexpectedCharError

	// StringIteratorError indicates that an expected character was not found at
	// the cursor. This is an internal invariant violation, not bad user input.
	StringIteratorError
)

func rangeError(pos int, lo, hi rune) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, CharacterRangeError, "invalid character range [%c-%c]", lo, hi)
}

func repetitionError(pos int, c rune) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, RepetitionValueError, "expected number for repetition amount, received %q", c)
}

func unmatchedError(pos int, c rune) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, UnmatchedDelimError, "unmatched %q", c)
}

func emptyClassError(pos int) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, EmptyClassError, "empty character class")
}

func captureNameError(pos int, c rune) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, CaptureNameError, "expected ':' or '<' after '?', received %q", c)
}

func danglingEscapeError(pos int) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, DanglingEscapeError, "escape character at end of input")
}

func unexpectedCharError(pos int, c rune) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, UnexpectedCharError, "unexpected %q", c)
}

func iteratorError(pos int, got, want rune) *rxrail.Error {
	return rxrail.FormatErrorPos(pos, StringIteratorError, "parsing character %q, expected character %q", got, want)
}
