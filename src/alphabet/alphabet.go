package alphabet

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/voxkit/ctc-alphabet/src/common"
	"github.com/voxkit/ctc-alphabet/src/textscan"
)

// debugf forwards to the global logger's debug writer when one is installed.
// The alphabet is also used as a library, so a missing logger is fine.
func debugf(format string, v ...any) {
	if common.GLogger != nil {
		common.GLogger.DebugPrintf(format, v...)
	}
}

// SpaceLabelNotFound is the value reported by SpaceLabel when the alphabet
// contains no whitespace entry.
const SpaceLabelNotFound = -2

// Alphabet maps between the integer labels emitted by a CTC decoder and
// the text units they stand for. Implementations: TableAlphabet for an
// explicit per-line mapping, RawByteAlphabet for the fixed 256-byte one.
//
// EncodeSingle, Encode, DecodeSingle and Decode panic on a unit or label
// outside the alphabet: such a call means the alphabet and the model it
// travels with do not match, which no caller can safely continue past.
// Validate with CanEncodeSingle/CanEncode first.
type Alphabet interface {
	CanEncodeSingle(unit string) bool
	CanEncode(text string) bool
	EncodeSingle(unit string) uint16
	Encode(text string) []uint16
	DecodeSingle(label uint16) string
	Decode(labels []uint16) string
	Serialize() []byte
	Size() int
	SpaceLabel() int
}

// TableAlphabet is an explicit bidirectional mapping between labels and
// UTF-8 text units, built either from a definition file (one entry per
// line) or from a serialized buffer.
type TableAlphabet struct {
	labelToText map[uint16]string
	textToLabel map[string]uint16
	// labels holds insertion order, so Serialize output is deterministic.
	labels     []uint16
	size       uint16
	spaceLabel int
}

func newTableAlphabet() *TableAlphabet {
	return &TableAlphabet{
		labelToText: make(map[uint16]string),
		textToLabel: make(map[string]uint16),
		spaceLabel:  SpaceLabelNotFound,
	}
}

// insert is the only writer of the two mappings, keeping them exact
// inverses of each other.
func (a *TableAlphabet) insert(label uint16, text string) {
	a.labelToText[label] = text
	a.textToLabel[text] = label
	a.labels = append(a.labels, label)
}

// NewTableAlphabetFromFile builds a TableAlphabet from a definition file.
func NewTableAlphabetFromFile(path string) (*TableAlphabet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open alphabet file \"%s\"", path)
	}
	defer file.Close()
	return NewTableAlphabetFromReader(file)
}

// NewTableAlphabetFromReader builds a TableAlphabet from a line-oriented
// definition source. Each non-empty line becomes one entry, labeled in file
// order starting at 0. Lines starting with "#" are comments; a literal "#"
// entry is written as the two-character escape "\#". A line holding exactly
// one whitespace codepoint marks the word-boundary label (the last such
// line wins).
func NewTableAlphabetFromReader(r io.Reader) (*TableAlphabet, error) {
	result := newTableAlphabet()
	label := uint16(0)

	fileScanner := bufio.NewScanner(r)
	fileScanner.Split(textscan.ScanLines)

	for fileScanner.Scan() {
		line := fileScanner.Text()
		if line == `\#` {
			line = "#"
		} else if strings.HasPrefix(line, "#") {
			debugf("Skipping comment: %q", line)
			continue
		}
		cps := splitIntoCodepoints(line)
		if len(cps) == 1 && isUnicodeSpace(cps[0]) {
			debugf("Space label will be %d (%q)", label, line)
			result.spaceLabel = int(label)
		}
		if len(line) == 0 {
			continue
		}
		result.insert(label, line)
		label++
	}
	if err := fileScanner.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read alphabet definition")
	}
	result.size = label
	debugf("Built alphabet: %d entries, space label %d", result.size, result.spaceLabel)
	return result, nil
}

func (a *TableAlphabet) CanEncodeSingle(unit string) bool {
	_, ok := a.textToLabel[unit]
	return ok
}

func (a *TableAlphabet) CanEncode(text string) bool {
	scanner := NewCodepointScanner(text)
	for scanner.Scan() {
		if !a.CanEncodeSingle(scanner.Text()) {
			return false
		}
	}
	return true
}

func (a *TableAlphabet) EncodeSingle(unit string) uint16 {
	label, ok := a.textToLabel[unit]
	if !ok {
		panic(fmt.Sprintf("alphabet: invalid string %q", unit))
	}
	return label
}

func (a *TableAlphabet) Encode(text string) []uint16 {
	result := make([]uint16, 0, utf8.RuneCountInString(text))
	scanner := NewCodepointScanner(text)
	for scanner.Scan() {
		result = append(result, a.EncodeSingle(scanner.Text()))
	}
	return result
}

func (a *TableAlphabet) DecodeSingle(label uint16) string {
	text, ok := a.labelToText[label]
	if !ok {
		panic(fmt.Sprintf("alphabet: invalid label %d", label))
	}
	return text
}

func (a *TableAlphabet) Decode(labels []uint16) string {
	var sb strings.Builder
	for _, label := range labels {
		sb.WriteString(a.DecodeSingle(label))
	}
	return sb.String()
}

// Size returns the number of entries in the alphabet.
func (a *TableAlphabet) Size() int {
	return int(a.size)
}

// SpaceLabel returns the label of the whitespace entry, or
// SpaceLabelNotFound if the alphabet has none.
func (a *TableAlphabet) SpaceLabel() int {
	return a.spaceLabel
}

// Labels returns the labels in insertion order (definition-file order for a
// parsed alphabet, buffer order for a deserialized one).
func (a *TableAlphabet) Labels() []uint16 {
	result := make([]uint16, len(a.labels))
	copy(result, a.labels)
	return result
}
