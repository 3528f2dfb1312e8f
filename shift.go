package uintb128

import "github.com/calebcase/uintb128/bitwise"

// ShiftRight returns u logically shifted right by n bits, n in 0..128.
// n=0 returns u unchanged and n=128 returns zero. A distance outside
// 0..128 fails with the out of range class.
//
// The shift is decomposed into whole byte moves plus a residual bit
// count. When the residual is zero, bytes move toward the least
// significant end without any intra-byte bit manipulation. Otherwise each
// source byte is shifted by the residual, the bits it shifted out are
// carried into the top of the next, less significant destination byte.
func (u Uint128) ShiftRight(n uint) (out Uint128, err error) {
	defer Error.WrapP(&err)

	if n > Bits {
		return Uint128{}, ErrOutOfRange.New(
			"shift distance %d is outside 0..%d",
			n, Bits,
		)
	}

	switch n {
	case 0:
		return u, nil
	case Bits:
		return Uint128{}, nil
	}

	whole, residual, err := bitwise.ShiftCounts(n)
	if err != nil {
		return Uint128{}, err
	}

	if residual == 0 {
		for i := Size - 1; i >= int(whole); i-- {
			out[i] = u[i-int(whole)]
		}

		return out, nil
	}

	carry := byte(0)
	for i := 0; i < Size-int(whole); i++ {
		b, err := bitwise.SetMSBits(residual, carry, u[i]>>residual)
		if err != nil {
			return Uint128{}, err
		}

		carry, err = bitwise.LSBits(residual, u[i])
		if err != nil {
			return Uint128{}, err
		}

		out[i+int(whole)] = b
	}

	return out, nil
}
