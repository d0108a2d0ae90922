/*
Package rxrail turns a regular expression string into either a box-and-line
"railroad" syntax diagram made of Unicode box-drawing characters, or a
structured natural-language description. It never matches a regex against
input text; it only parses and visualizes syntax.

Consists of subpackages:
  - cmd/rxrail: console utility rendering a regex as a diagram or description;
  - regex: types of the syntax tree produced by parsing;
  - parser: recursive-descent parser converting regex text to a syntax tree;
  - railroad: diagram layout primitives, diagram generator, and renderer;
  - text: natural-language renderer producing lines and highlight spans;
  - extract: string-literal extraction and per-language string formats.

Typical usage is:

1. Obtain the raw regex string, either directly or by extracting it from a
source line with the extract subpackage.

2. Parse it with parser.Parse, producing a regex.Node tree.

3. Feed the tree to railroad.Generate/railroad.Render for a diagram, or to
text.Render for a plain-text description.

Parsing and rendering are pure and share no mutable state, so independent
calls may run concurrently without coordination.
*/
package rxrail

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SyntaxErrors  = 1   // used by parser
	DiagramErrors = 101 // used by railroad
	TextErrors    = 201 // used by text
	ExtractErrors = 301 // used by extract
)

// Error is the error type used by rxrail subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including position information if provided.
	Message string

	// Pos contains 0-based rune offset in the parsed text, or -1 if not applicable.
	Pos int
}

// NewError creates new Error structure.
// pos will be added to error message if non-negative.
func NewError(code int, msg string, pos int) *Error {
	if pos >= 0 {
		msg += fmt.Sprintf(" at position %d", pos)
	}
	return &Error{code, msg, pos}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, -1)
}

// FormatErrorPos creates Error structure with position information.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos int, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos)
}
