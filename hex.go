package uintb128

// hexLen is the exact width of the textual form: two characters per byte,
// no prefix, no leading zero suppression.
const hexLen = 2 * Size

const hexDigits = "0123456789abcdef"

// ParseHex parses a string of exactly 32 hex characters (either case) into
// a value. Each consecutive character pair decodes to one byte, processed
// from the string's end backward into the buffer's least significant byte
// upward. A wrong length or a non-hex character fails with the invalid
// argument class.
func ParseHex(s string) (u Uint128, err error) {
	defer Error.WrapP(&err)

	if len(s) != hexLen {
		return u, ErrInvalidArgument.New(
			"hex string must be %d characters: got %d",
			hexLen, len(s),
		)
	}

	for i := Size - 1; i >= 0; i-- {
		hi, ok := unhex(s[2*i])
		if !ok {
			return Uint128{}, ErrInvalidArgument.New(
				"invalid hex character %q at index %d",
				s[2*i], 2*i,
			)
		}

		lo, ok := unhex(s[2*i+1])
		if !ok {
			return Uint128{}, ErrInvalidArgument.New(
				"invalid hex character %q at index %d",
				s[2*i+1], 2*i+1,
			)
		}

		u[i] = hi<<4 | lo
	}

	return u, nil
}

// ParseHexOK is ParseHex with the failure kind discarded.
func ParseHexOK(s string) (Uint128, bool) {
	u, err := ParseHex(s)

	return u, err == nil
}

func unhex(c byte) (b byte, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// Hex returns the value as exactly 32 lowercase hex characters, most
// significant byte first, each byte zero padded to two digits.
func (u Uint128) Hex() string {
	var b [hexLen]byte

	for i, c := range u {
		b[2*i] = hexDigits[c>>4]
		b[2*i+1] = hexDigits[c&0b_0000_1111]
	}

	return string(b[:])
}

// String implements fmt.Stringer with the diagnostic form
// "uintb128 = <32 hex characters>".
func (u Uint128) String() string {
	return "uintb128 = " + u.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (u Uint128) MarshalText() (text []byte, err error) {
	return []byte(u.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Uint128) UnmarshalText(text []byte) (err error) {
	v, err := ParseHex(string(text))
	if err != nil {
		return err
	}

	*u = v

	return nil
}
