package smartstr

import "errors"

// Errors returned by String operations. Failed operations leave the string
// unchanged.
var (
	// ErrOffsetOutOfRange indicates an offset beyond the current length.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrNotCharBoundary indicates an offset that does not land on a UTF-8
	// character boundary.
	ErrNotCharBoundary = errors.New("offset not on a UTF-8 character boundary")

	// ErrRangeInvalid indicates an invalid range (end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrInvalidUTF8 indicates input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

	// ErrCorrupt indicates a representation invariant violation detected by
	// CheckInvariants.
	ErrCorrupt = errors.New("representation invariant violated")
)
