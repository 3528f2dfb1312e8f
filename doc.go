// Package uintb128 implements a 128-bit unsigned integer value type backed
// by a fixed 16 byte big-endian buffer.
//
// Layout
//
// The value is an array of exactly 16 bytes with the most significant byte
// first:
//
//  | index | 0   | 1   | ... | 14  | 15  |
//  |-------|-----|-----|-----|-----|-----|
//  | byte  | MSB |     |     |     | LSB |
//
// Because the layout is big-endian, numeric order and byte lexicographic
// order are the same relation: comparison is a direct byte sequence
// comparison.
//
// Values are plain arrays, so assignment and passing copy the whole value.
// Every constructor and operation returns an independently owned value and
// never mutates its operands.
//
// Operations
//
// Arithmetic is exact width: Add and Sub fail instead of wrapping when the
// result does not fit in 128 bits. Each fallible operation comes in a
// strict form that reports which failure class occurred and a lenient form
// that collapses any failure into a single absent result.
//
// The textual form is exactly 32 lowercase hex characters with no prefix
// and no leading zero suppression. Parsing accepts both character cases.
//
// Single byte bitmask and shift helpers used to move sub-byte fields
// across byte boundaries live in the bitwise subpackage.
package uintb128
