package alphabet

import (
	"encoding/binary"
	"fmt"
)

const rawByteAlphabetSize = 256

// RawByteAlphabet is the byte-level specialization of Alphabet: the entries
// are exactly the 256 byte values and each label equals its byte value, so
// no table is stored. Used by models that predict raw UTF-8 bytes instead
// of per-language characters.
type RawByteAlphabet struct{}

func NewRawByteAlphabet() *RawByteAlphabet {
	return &RawByteAlphabet{}
}

func (a *RawByteAlphabet) CanEncodeSingle(unit string) bool {
	return true
}

func (a *RawByteAlphabet) CanEncode(text string) bool {
	return true
}

func (a *RawByteAlphabet) EncodeSingle(unit string) uint16 {
	if len(unit) != 1 {
		panic(fmt.Sprintf("alphabet: invalid string %q", unit))
	}
	return uint16(unit[0])
}

// Encode maps each raw byte of text to its own label.
func (a *RawByteAlphabet) Encode(text string) []uint16 {
	result := make([]uint16, len(text))
	for i := 0; i < len(text); i++ {
		result[i] = a.EncodeSingle(text[i : i+1])
	}
	return result
}

func (a *RawByteAlphabet) DecodeSingle(label uint16) string {
	if label >= rawByteAlphabetSize {
		panic(fmt.Sprintf("alphabet: invalid label %d", label))
	}
	return string([]byte{byte(label)})
}

func (a *RawByteAlphabet) Decode(labels []uint16) string {
	result := make([]byte, len(labels))
	for i, label := range labels {
		if label >= rawByteAlphabetSize {
			panic(fmt.Sprintf("alphabet: invalid label %d", label))
		}
		result[i] = byte(label)
	}
	return string(result)
}

// Serialize emits the implicit mapping in the common flat buffer format,
// one single-byte entry per byte value.
func (a *RawByteAlphabet) Serialize() []byte {
	out := make([]byte, 0, 2+5*rawByteAlphabetSize)
	out = binary.LittleEndian.AppendUint16(out, rawByteAlphabetSize)
	for b := 0; b < rawByteAlphabetSize; b++ {
		out = binary.LittleEndian.AppendUint16(out, uint16(b))
		out = binary.LittleEndian.AppendUint16(out, 1)
		out = append(out, byte(b))
	}
	return out
}

func (a *RawByteAlphabet) Size() int {
	return rawByteAlphabetSize
}

// SpaceLabel returns the label of the ASCII space byte.
func (a *RawByteAlphabet) SpaceLabel() int {
	return int(' ')
}
