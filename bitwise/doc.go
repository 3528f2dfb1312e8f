// Package bitwise provides single byte bitmask and bit-shift helpers.
//
// These are the building blocks for moving sub-byte fields across byte
// boundaries: masks over the low bits of a byte, single bit test and set,
// placing bits into the top of a byte, and decomposing a shift distance
// into whole byte and residual bit counts.
//
// Bit positions are counted from the least significant bit:
//
//  | bit   | 7   | 6 | 5 | 4 | 3 | 2 | 1 | 0   |
//  |-------|-----|---|---|---|---|---|---|-----|
//  |       | MSB |   |   |   |   |   |   | LSB |
//
// Every argument has a documented domain and anything outside it fails
// with the out of range class. Nothing clamps, wraps, or truncates.
package bitwise
