package textrange

import "errors"

// Error variables define the failure scenarios of range construction and
// range application, so callers can branch with errors.Is.
var (
	// ErrInvalidRange indicates a negative location or length.
	ErrInvalidRange = errors.New("range has negative location or length")

	// ErrMalformedRange indicates that a textual range did not contain
	// the two integers of the "{location, length}" form.
	ErrMalformedRange = errors.New("malformed range text")

	// ErrOutOfBounds indicates a range that does not fit within the
	// target sequence.
	ErrOutOfBounds = errors.New("range out of bounds")
)
