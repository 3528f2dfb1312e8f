package uintb128

import "bytes"

// Uint128 is a 128-bit unsigned integer stored as 16 big-endian bytes.
// Index 0 holds the most significant byte, index 15 the least significant.
type Uint128 [16]byte

// Widths of the value.
const (
	Size = 16
	Bits = 128
)

// Zero returns the zero value.
func Zero() Uint128 {
	return Uint128{}
}

// Min returns the smallest representable value. It is the zero value.
func Min() Uint128 {
	return Uint128{}
}

// Max returns the largest representable value: 16 bytes of 0xFF.
func Max() (u Uint128) {
	for i := range u {
		u[i] = 0b_1111_1111
	}

	return u
}

// Equal returns true if u and v hold the same value.
func (u Uint128) Equal(v Uint128) bool {
	return u == v
}

// Cmp returns -1 if u < v, 0 if u == v, and +1 if u > v. The big-endian
// layout makes this the same as byte lexicographic comparison.
func (u Uint128) Cmp(v Uint128) int {
	return bytes.Compare(u[:], v[:])
}

// IsZero returns true if u is the zero value.
func (u Uint128) IsZero() bool {
	return u == Uint128{}
}
