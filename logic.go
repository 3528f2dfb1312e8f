package uintb128

// And returns the byte-wise conjunction of u and v.
func (u Uint128) And(v Uint128) (out Uint128) {
	for i := range out {
		out[i] = u[i] & v[i]
	}

	return out
}

// Or returns the byte-wise disjunction of u and v.
func (u Uint128) Or(v Uint128) (out Uint128) {
	for i := range out {
		out[i] = u[i] | v[i]
	}

	return out
}

// Xor returns the byte-wise exclusive disjunction of u and v.
func (u Uint128) Xor(v Uint128) (out Uint128) {
	for i := range out {
		out[i] = u[i] ^ v[i]
	}

	return out
}

// Not returns the byte-wise one's complement of u.
func (u Uint128) Not() (out Uint128) {
	for i := range out {
		out[i] = ^u[i]
	}

	return out
}
