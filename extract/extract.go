// Package extract locates the string literal under a cursor in a source
// line and strips the language's quoting so the parser receives the bare
// regular expression. Per-language string formats are read-only tables
// built once; they may be extended from a YAML document.
package extract

import (
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rxrail/rxrail"
)

// Error codes used by extract:
const (
	// UnsupportedLanguageError indicates a language with no string format entry.
	UnsupportedLanguageError = rxrail.ExtractErrors + iota

	// NoStringError indicates that the cursor is not inside a string literal.
	NoStringError

	// BadFormatError indicates an unusable string format definition.
	BadFormatError
)

// Language identifies a source language by name.
type Language string

const (
	Python     Language = "python"
	Rust       Language = "rust"
	JavaScript Language = "javascript"
	Go         Language = "go"
	Unknown    Language = ""
)

// extensions maps a file extension to its language.
var extensions = map[string]Language{
	".py": Python,
	".rs": Rust,
	".js": JavaScript,
	".go": Go,
}

// LanguageForFile derives the language from a file name's extension.
func LanguageForFile(filename string) Language {
	return extensions[strings.ToLower(filepath.Ext(filename))]
}

// StringFormat describes how a language quotes and escapes string literals.
// Of these, only the escape character is also consulted by the parser.
type StringFormat struct {
	// Delims holds the language's string delimiter sequences.
	Delims []string `yaml:"delims"`

	// Escape is the language's escape character.
	Escape string `yaml:"escape"`

	// RawPrefixes holds prefixes that start a raw string when immediately
	// preceding a delimiter, e.g. "r" for Python's r"...".
	RawPrefixes []string `yaml:"raw_prefixes"`
}

// EscapeChar returns the escape character, or '\\' if unset.
func (f *StringFormat) EscapeChar() rune {
	if f.Escape == "" {
		return '\\'
	}
	return []rune(f.Escape)[0]
}

// Formats maps languages to their string formats.
type Formats map[Language]StringFormat

// DefaultFormats returns the built-in per-language table.
func DefaultFormats() Formats {
	return Formats{
		Python:     {Delims: []string{`"`, `'`}, Escape: `\`, RawPrefixes: []string{"r"}},
		Rust:       {Delims: []string{`"`}, Escape: `\`, RawPrefixes: []string{"r"}},
		JavaScript: {Delims: []string{`"`, `'`, "`"}, Escape: `\`},
		Go:         {Delims: []string{`"`, "`"}, Escape: `\`},
	}
}

// LoadFormats reads a YAML document mapping language names to string
// formats and merges it over the defaults.
func LoadFormats(r io.Reader) (Formats, error) {
	var loaded Formats
	dec := yaml.NewDecoder(r)
	if e := dec.Decode(&loaded); e != nil {
		return nil, rxrail.FormatError(BadFormatError, "cannot parse string formats: %s", e.Error())
	}

	formats := DefaultFormats()
	for lang, f := range loaded {
		if len(f.Delims) == 0 {
			return nil, rxrail.FormatError(BadFormatError, "language %q defines no string delimiters", lang)
		}
		formats[lang] = f
	}
	return formats, nil
}

// For returns the string format for lang.
func (fs Formats) For(lang Language) (*StringFormat, error) {
	f, ok := fs[lang]
	if !ok {
		return nil, rxrail.FormatError(UnsupportedLanguageError, "language %q is not supported", lang)
	}
	return &f, nil
}

// Extract returns the content of the string literal surrounding the
// 0-based rune position col in line, with delimiters stripped. The nearest
// delimiter at or before the cursor opens the literal; the nearest one
// after it closes it. raw reports whether the literal carries one of the
// language's raw prefixes.
func (f *StringFormat) Extract(line string, col int) (content string, raw bool, err error) {
	runes := []rune(line)
	if col < 0 || col >= len(runes) {
		return "", false, rxrail.FormatErrorPos(col, NoStringError, "cursor outside line")
	}

	start, end := -1, -1
	for i := 0; i < len(runes); i++ {
		if !f.delimAt(runes, i) {
			continue
		}
		if i <= col {
			start = i
		} else if end < 0 {
			end = i
			break
		}
	}
	if start < 0 || end < 0 {
		return "", false, rxrail.FormatErrorPos(col, NoStringError, "no string literal under cursor")
	}

	return string(runes[start+1 : end]), f.isRaw(runes, start), nil
}

func (f *StringFormat) delimAt(runes []rune, i int) bool {
	for _, d := range f.Delims {
		dr := []rune(d)
		if i+len(dr) > len(runes) {
			continue
		}
		if string(runes[i:i+len(dr)]) == d {
			return true
		}
	}
	return false
}

func (f *StringFormat) isRaw(runes []rune, open int) bool {
	for _, p := range f.RawPrefixes {
		pr := []rune(p)
		if open >= len(pr) && string(runes[open-len(pr):open]) == p {
			return true
		}
	}
	return false
}
