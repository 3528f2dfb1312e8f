package uintb128

import "github.com/zeebo/errs"

// Error is the class wrapping every failure produced by this package.
var Error = errs.Class("uintb128")

// Failure classes. Strict operations fail with exactly one of these.
// Lenient operations discard the class and report absence instead.
var (
	ErrOverflow        = errs.Class("overflow")
	ErrInvalidArgument = errs.Class("invalid argument")
	ErrOutOfRange      = errs.Class("out of range")
)
