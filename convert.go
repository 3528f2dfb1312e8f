package uintb128

import "math/big"

// FromBytes constructs a value from exactly 16 big-endian bytes. The
// input is copied, never aliased.
func FromBytes(b []byte) (u Uint128, err error) {
	defer Error.WrapP(&err)

	if len(b) != Size {
		return u, ErrInvalidArgument.New(
			"exactly %d bytes required: got %d",
			Size, len(b),
		)
	}

	copy(u[:], b)

	return u, nil
}

// Bytes returns the value as a fresh 16 byte big-endian slice.
func (u Uint128) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])

	return b
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u Uint128) MarshalBinary() (data []byte, err error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *Uint128) UnmarshalBinary(data []byte) (err error) {
	v, err := FromBytes(data)
	if err != nil {
		return err
	}

	*u = v

	return nil
}

// BigInt returns the value as a fresh big.Int.
func (u Uint128) BigInt() *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// FromBig constructs a value from a non-negative big.Int no wider than
// 128 bits. This is a conversion only: arithmetic stays exact width.
func FromBig(i *big.Int) (u Uint128, err error) {
	defer Error.WrapP(&err)

	if i.Sign() < 0 {
		return u, ErrInvalidArgument.New("negative value %s", i)
	}

	if i.BitLen() > Bits {
		return u, ErrInvalidArgument.New("value %s exceeds %d bits", i, Bits)
	}

	b := i.Bytes()
	copy(u[Size-len(b):], b)

	return u, nil
}
