package bitwise

import "github.com/zeebo/errs"

// Error is the class wrapping every failure produced by this package.
var Error = errs.Class("bitwise")

// ErrOutOfRange marks an argument outside its documented domain.
var ErrOutOfRange = errs.Class("out of range")

// Widths the helpers operate at.
const (
	ByteBits  = 8
	ValueBits = 128
)

// LSBMask returns the byte with its low n bits set, n in 1..8.
//
// Example:
//
//	m, _ := LSBMask(3) // 0b0000_0111
func LSBMask(n uint) (mask byte, err error) {
	defer Error.WrapP(&err)

	if n < 1 || n > ByteBits {
		return 0, ErrOutOfRange.New("mask width %d is outside 1..%d", n, ByteBits)
	}

	return byte(uint(1)<<n - 1), nil
}

// LSBits returns x masked to its low n bits, n in 1..8.
func LSBits(n uint, x byte) (b byte, err error) {
	defer Error.WrapP(&err)

	mask, err := LSBMask(n)
	if err != nil {
		return 0, err
	}

	return x & mask, nil
}

// SetBit returns x with bit i set, i in 0..7.
func SetBit(i uint, x byte) (b byte, err error) {
	defer Error.WrapP(&err)

	if i >= ByteBits {
		return 0, ErrOutOfRange.New("bit index %d is outside 0..%d", i, ByteBits-1)
	}

	return x | 1<<i, nil
}

// IsBitSet returns true if bit i of x is set, i in 0..7.
func IsBitSet(i uint, x byte) (ok bool, err error) {
	defer Error.WrapP(&err)

	if i >= ByteBits {
		return false, ErrOutOfRange.New("bit index %d is outside 0..%d", i, ByteBits-1)
	}

	return x&(1<<i) != 0, nil
}

// SetMSBits places the low n bits of x into the top n bits of y, leaving
// the low 8-n bits of y untouched, n in 0..8. n=0 returns y unchanged and
// n=8 returns x unchanged.
//
// Example:
//
//	b, _ := SetMSBits(3, 0b0000_0101, 0b0001_1111) // 0b1011_1111
func SetMSBits(n uint, x, y byte) (b byte, err error) {
	defer Error.WrapP(&err)

	switch {
	case n == 0:
		return y, nil
	case n == ByteBits:
		return x, nil
	case n > ByteBits:
		return 0, ErrOutOfRange.New("bit count %d is outside 0..%d", n, ByteBits)
	}

	low, err := LSBits(n, x)
	if err != nil {
		return 0, err
	}

	keep, err := LSBMask(ByteBits - n)
	if err != nil {
		return 0, err
	}

	return low<<(ByteBits-n) | y&keep, nil
}

// ShiftCounts decomposes a shift distance into whole byte and residual
// bit counts, n in 0..128.
//
// Example:
//
//	whole, residual, _ := ShiftCounts(19) // 2, 3
func ShiftCounts(n uint) (whole, residual uint, err error) {
	defer Error.WrapP(&err)

	if n > ValueBits {
		return 0, 0, ErrOutOfRange.New("shift distance %d is outside 0..%d", n, ValueBits)
	}

	return n / ByteBits, n % ByteBits, nil
}
