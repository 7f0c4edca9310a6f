package textrange

import (
	"fmt"
	"unicode/utf8"
)

// Full returns the range covering every rune of s.
func Full(s string) Range {
	return Range{Location: 0, Length: utf8.RuneCountInString(s)}
}

// Slice returns the substring of s addressed by r, counting runes.
// It fails with ErrOutOfBounds when r does not fit within s and with
// ErrInvalidRange when r is negative or NotFound.
func Slice(s string, r Range) (string, error) {
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	runes := []rune(s)
	if r.Max() > len(runes) {
		return "", fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, len(runes))
	}
	return string(runes[r.Location:r.Max()]), nil
}

// Replace returns s with the runes addressed by r substituted by with.
// An empty range inserts at the range's location.
func Replace(s string, r Range, with string) (string, error) {
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	runes := []rune(s)
	if r.Max() > len(runes) {
		return "", fmt.Errorf("%w: %s exceeds length %d", ErrOutOfBounds, r, len(runes))
	}
	out := make([]rune, 0, len(runes)-r.Length+utf8.RuneCountInString(with))
	out = append(out, runes[:r.Location]...)
	out = append(out, []rune(with)...)
	out = append(out, runes[r.Max():]...)
	return string(out), nil
}
