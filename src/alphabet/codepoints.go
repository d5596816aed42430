package alphabet

import (
	"unicode"
	"unicode/utf8"
)

// CodepointScanner walks a string one UTF-8 encoded codepoint at a time,
// in the style of bufio.Scanner:
//
//	scanner := NewCodepointScanner(text)
//	for scanner.Scan() {
//	    unit := scanner.Text()
//	}
//
// The byte length of each unit is taken from its lead byte. A trailing
// sequence that announces more bytes than remain yields the short remainder
// as a final unit; this scanner is deliberately not a UTF-8 validator.
type CodepointScanner struct {
	input string
	pos   int
	text  string
}

func NewCodepointScanner(input string) *CodepointScanner {
	return &CodepointScanner{input: input}
}

// Scan advances to the next codepoint unit, returning false at end of input.
func (s *CodepointScanner) Scan() bool {
	if s.pos >= len(s.input) {
		return false
	}
	n := codepointLen(s.input[s.pos])
	if s.pos+n > len(s.input) {
		n = len(s.input) - s.pos
	}
	s.text = s.input[s.pos : s.pos+n]
	s.pos += n
	return true
}

// Text returns the unit produced by the last call to Scan.
func (s *CodepointScanner) Text() string {
	return s.text
}

// Reset rewinds the scanner to the beginning of its input.
func (s *CodepointScanner) Reset() {
	s.pos = 0
	s.text = ""
}

// codepointLen returns the byte length announced by a UTF-8 lead byte.
// A continuation or invalid lead byte is sliced on its own.
func codepointLen(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	}
	return 1
}

func splitIntoCodepoints(s string) []string {
	result := make([]string, 0, utf8.RuneCountInString(s))
	scanner := NewCodepointScanner(s)
	for scanner.Scan() {
		result = append(result, scanner.Text())
	}
	return result
}

// isUnicodeSpace reports whether unit is a single codepoint with the Unicode
// White_Space property (ASCII control spaces, ordinary space, NBSP, and the
// Unicode space separators).
func isUnicodeSpace(unit string) bool {
	r, size := utf8.DecodeRuneInString(unit)
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return unicode.IsSpace(r)
}
