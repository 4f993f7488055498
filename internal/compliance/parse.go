package compliance

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput is returned when a compliance code is not a whole
// number of hexadecimal bytes.
var ErrMalformedInput = errors.New("malformed compliance code")

// LaneGroupSize is the number of bytes in one lane group.
const LaneGroupSize = 4

// Sequence is a compliance code split into its module-type byte and
// complete lane groups.
type Sequence struct {
	ModuleType uint8
	Groups     [][LaneGroupSize]byte
	// Trailing counts bytes after the last complete group. They are never decoded.
	Trailing int
}

// Parse normalizes a compliance code such as "02:0B:12:34:AB" and splits it.
// Colons are separators and may appear anywhere.
func Parse(code string) (Sequence, error) {
	digits := strings.ReplaceAll(code, ":", "")
	if digits == "" {
		return Sequence{}, fmt.Errorf("%w: empty", ErrMalformedInput)
	}

	raw, err := hex.DecodeString(digits)
	if err != nil {
		var invalid hex.InvalidByteError
		switch {
		case errors.As(err, &invalid):
			return Sequence{}, fmt.Errorf("%w: invalid hex character %q", ErrMalformedInput, rune(invalid))
		case errors.Is(err, hex.ErrLength):
			return Sequence{}, fmt.Errorf("%w: odd number of hex digits (%d)", ErrMalformedInput, len(digits))
		default:
			return Sequence{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}

	rest := raw[1:]
	seq := Sequence{
		ModuleType: raw[0],
		Groups:     make([][LaneGroupSize]byte, 0, len(rest)/LaneGroupSize),
		Trailing:   len(rest) % LaneGroupSize,
	}
	for len(rest) >= LaneGroupSize {
		seq.Groups = append(seq.Groups, [LaneGroupSize]byte(rest[:LaneGroupSize]))
		rest = rest[LaneGroupSize:]
	}
	return seq, nil
}
