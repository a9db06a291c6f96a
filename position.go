package swiftdsv

import (
	"fmt"
	"math"
)

// MaxPosition is the largest offset or length a Position can hold.
const MaxPosition = math.MaxUint32

// Position locates a value inside the buffer it was parsed from.
type Position struct {
	Offset uint32
	Length uint32
}

// EncodePosition packs offset into the high 32 bits and length into the low
// 32 bits of a single word. It returns an error wrapping ErrOverflow if either
// is negative or larger than MaxPosition.
func EncodePosition(offset, length int) (uint64, error) {
	if offset < 0 || uint64(offset) > MaxPosition {
		return 0, fmt.Errorf("%w: offset %d not in [0, %d]", ErrOverflow, offset, uint64(MaxPosition))
	}
	if length < 0 || uint64(length) > MaxPosition {
		return 0, fmt.Errorf("%w: length %d not in [0, %d]", ErrOverflow, length, uint64(MaxPosition))
	}
	return uint64(offset)<<32 | uint64(length), nil
}

// DecodePosition unpacks a word produced by EncodePosition or Position.Pack.
func DecodePosition(word uint64) Position {
	return Position{Offset: uint32(word >> 32), Length: uint32(word)}
}

// Pack returns the single-word encoding of p.
func (p Position) Pack() uint64 {
	return uint64(p.Offset)<<32 | uint64(p.Length)
}

// End returns the offset one past the last byte of the value.
func (p Position) End() int {
	return int(p.Offset) + int(p.Length)
}

// Slice returns the value p locates in buf. buf must be the buffer p was
// parsed from.
func (p Position) Slice(buf string) string {
	return buf[p.Offset:p.End()]
}
