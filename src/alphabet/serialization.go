package alphabet

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// ErrMalformedBuffer is returned by DeserializeAlphabet for a truncated or
// otherwise malformed buffer. Wrapped errors carry the failing entry and
// offset; test with errors.Is.
var ErrMalformedBuffer = errors.New("malformed alphabet buffer")

// Serialization format is a uint16 entry count followed by entry_count
// (label, value) pairs, where label is a uint16 and value is a uint16
// length followed by `length` UTF-8 encoded bytes. All integers are
// little-endian, there is no padding and no trailing metadata. This layout
// is shared with the other implementations of the format and must not
// change.

// Serialize encodes the alphabet into the flat buffer format, entries in
// insertion order.
func (a *TableAlphabet) Serialize() []byte {
	out := make([]byte, 0, 2+6*len(a.labels))
	out = binary.LittleEndian.AppendUint16(out, a.size)
	for _, label := range a.labels {
		text := a.labelToText[label]
		out = binary.LittleEndian.AppendUint16(out, label)
		out = binary.LittleEndian.AppendUint16(out, uint16(len(text)))
		out = append(out, text...)
	}
	return out
}

// DeserializeAlphabet rebuilds a TableAlphabet from a serialized buffer.
// Labels are accepted in any order and need not be dense. The space label
// is set for an entry whose text is literally a single ASCII space; this is
// narrower than the Unicode whitespace check used when parsing a definition
// file, and intentionally so: serialized alphabets use " " for the word
// boundary.
func DeserializeAlphabet(buffer []byte) (*TableAlphabet, error) {
	result := newTableAlphabet()
	offset := 0

	if len(buffer)-offset < 2 {
		return nil, errors.Wrap(ErrMalformedBuffer, "missing entry count")
	}
	count := binary.LittleEndian.Uint16(buffer[offset:])
	offset += 2

	for i := 0; i < int(count); i++ {
		if len(buffer)-offset < 2 {
			return nil, errors.Wrapf(ErrMalformedBuffer, "entry %d at offset %d: missing label", i, offset)
		}
		label := binary.LittleEndian.Uint16(buffer[offset:])
		offset += 2

		if len(buffer)-offset < 2 {
			return nil, errors.Wrapf(ErrMalformedBuffer, "entry %d at offset %d: missing text length", i, offset)
		}
		textLen := int(binary.LittleEndian.Uint16(buffer[offset:]))
		offset += 2

		if len(buffer)-offset < textLen {
			return nil, errors.Wrapf(ErrMalformedBuffer, "entry %d at offset %d: text needs %d bytes, %d remain", i, offset, textLen, len(buffer)-offset)
		}
		text := string(buffer[offset : offset+textLen])
		offset += textLen

		result.insert(label, text)
		if text == " " {
			result.spaceLabel = int(label)
		}
	}
	result.size = count
	return result, nil
}
