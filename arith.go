package uintb128

import "github.com/calebcase/oops"

// errSubBorrow marks a borrow surviving past the top byte. The minuend
// check in Sub makes it unreachable; it is kept as an invariant on the
// borrow chain itself.
var errSubBorrow = ErrOverflow.New("subtraction borrow out of the top byte")

// Add returns u + v. It fails with the overflow class when the true sum
// needs a 17th byte.
func (u Uint128) Add(v Uint128) (sum Uint128, err error) {
	defer Error.WrapP(&err)

	carry := uint16(0)
	for i := Size - 1; i >= 0; i-- {
		s := uint16(u[i]) + uint16(v[i]) + carry
		sum[i] = byte(s)
		carry = s >> 8
	}

	if carry != 0 {
		return Uint128{}, ErrOverflow.New(
			"sum of %s and %s exceeds %d bits",
			u.Hex(), v.Hex(), Bits,
		)
	}

	return sum, nil
}

// AddOK is Add with the failure kind discarded.
func (u Uint128) AddOK(v Uint128) (Uint128, bool) {
	sum, err := u.Add(v)

	return sum, err == nil
}

// Sub returns u - v. It requires u >= v and fails with the invalid
// argument class otherwise.
func (u Uint128) Sub(v Uint128) (diff Uint128, err error) {
	defer Error.WrapP(&err)

	if u.Cmp(v) < 0 {
		return Uint128{}, ErrInvalidArgument.New(
			"minuend %s is smaller than subtrahend %s",
			u.Hex(), v.Hex(),
		)
	}

	borrow := uint16(0)
	for i := Size - 1; i >= 0; i-- {
		x := uint16(u[i])
		y := uint16(v[i]) + borrow

		if x < y {
			diff[i] = byte(256 + x - y)
			borrow = 1
		} else {
			diff[i] = byte(x - y)
			borrow = 0
		}
	}

	if borrow != 0 {
		return Uint128{}, oops.Trace(errSubBorrow)
	}

	return diff, nil
}

// SubOK is Sub with the failure kind discarded. Both the underflow
// precondition and the defensive borrow invariant collapse into a single
// absent result.
func (u Uint128) SubOK(v Uint128) (Uint128, bool) {
	diff, err := u.Sub(v)

	return diff, err == nil
}
