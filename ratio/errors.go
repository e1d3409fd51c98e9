package ratio

import "errors"

// Errors returned by functions in this package. They are usually wrapped
// with the offending values; test for them with errors.Is.
var (
	ErrInvalidRatio = errors.New("invalid ratio")
	ErrOverflow     = errors.New("integer overflow")
	ErrSyntax       = errors.New("invalid ratio syntax")
	ErrNotRational  = errors.New("pitch is not a ratio")
)
