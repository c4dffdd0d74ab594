package memblock

import "errors"

var (
	// ErrMissingSeparator reports encoded text without a '.' between the
	// length prefix and the payload.
	ErrMissingSeparator = errors.New("encoded text has no '.' separator")

	// ErrInvalidLengthPrefix reports a length prefix that is not a
	// non-negative decimal integer.
	ErrInvalidLengthPrefix = errors.New("encoded text has an invalid length prefix")
)
