package mui

import (
	"strings"
	"unicode/utf16"

	"github.com/pkg/errors"
)

const (
	// A block is abandoned once more records than this fail to
	// decode.
	MAX_STRING_ERRORS = 2
)

var (
	errInvalidUTF16 = errors.New("Invalid UTF-16 sequence")
)

// If the length is an odd number last byte of information will be
// lost.
func ConvertToUint16(data []byte) []uint16 {
	result := make([]uint16, 0, len(data)/2)
	for i := 0; i+1 < len(data); i += 2 {
		result = append(result, uint16(data[i+1])<<8|uint16(data[i]))
	}
	return result
}

// DecodeUTF16 fails on unpaired surrogates rather than substituting
// them.
func DecodeUTF16(units []uint16) (string, error) {
	builder := strings.Builder{}
	for i := 0; i < len(units); i++ {
		unit := rune(units[i])
		if !utf16.IsSurrogate(unit) {
			builder.WriteRune(unit)
			continue
		}

		// A high surrogate must be followed by a low one.
		if unit >= 0xdc00 || i+1 >= len(units) {
			return "", errors.Wrapf(errInvalidUTF16,
				"unpaired surrogate %#x at %d", unit, i)
		}

		next := rune(units[i+1])
		if next < 0xdc00 || next > 0xdfff {
			return "", errors.Wrapf(errInvalidUTF16,
				"unpaired surrogate %#x at %d", unit, i)
		}

		builder.WriteRune(utf16.DecodeRune(unit, next))
		i++
	}

	return builder.String(), nil
}

// ParseStrings decodes a block of length prefixed UTF-16 records: a
// u16 count followed by that many u16 code units. A zero length, or a
// length running past the end of the block, consumes just the length
// field. Records which are not valid UTF-16 are dropped; after
// MAX_STRING_ERRORS such records the rest of the block is abandoned.
func ParseStrings(data []byte) string {
	output := strings.Builder{}
	error_count := 0

	units := ConvertToUint16(data)
	i := 0
	for i < len(units) {
		length := int(units[i])
		i++

		if length == 0 || i+length > len(units) {
			continue
		}

		text, err := DecodeUTF16(units[i : i+length])
		if err != nil {
			error_count++
			DebugPrint("ParseStrings: %v\n", err)
		} else {
			output.WriteString(text)
		}

		if error_count > MAX_STRING_ERRORS {
			break
		}
		i += length
	}

	return output.String()
}
