package textrange

import (
	"fmt"
	"math"
	"unicode"
)

// NotFound is the location reported by search functions when no match
// exists. Ranges with this location are invalid for every other operation.
const NotFound = -1

// Range describes a contiguous interval of integer positions by its
// starting location and length. The zero value is the empty range at
// position zero.
type Range struct {
	Location int
	Length   int
}

// None is the range returned by searches that find nothing.
var None = Range{Location: NotFound, Length: 0}

// New constructs a range, rejecting negative location or length.
func New(location, length int) (Range, error) {
	if location < 0 || length < 0 {
		return Range{}, fmt.Errorf("%w: {%d, %d}", ErrInvalidRange, location, length)
	}
	return Range{Location: location, Length: length}, nil
}

// IsValid reports whether the range has a non-negative location and length.
func (r Range) IsValid() bool {
	return r.Location >= 0 && r.Length >= 0
}

// IsNotFound reports whether the range carries the NotFound sentinel.
func (r Range) IsNotFound() bool {
	return r.Location == NotFound
}

// IsEmpty reports whether the range covers zero positions.
func (r Range) IsEmpty() bool {
	return r.Length == 0
}

// Max returns the position one past the last covered position.
func (r Range) Max() int {
	return r.Location + r.Length
}

// Contains reports whether pos lies within the range. Empty ranges
// contain no positions.
func (r Range) Contains(pos int) bool {
	if !r.IsValid() {
		return false
	}
	return r.Location <= pos && pos < r.Max()
}

// ContainsRange reports whether other lies entirely within r. An empty
// range is contained at any position between r's bounds inclusive.
func (r Range) ContainsRange(other Range) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return r.Location <= other.Location && other.Max() <= r.Max()
}

// Intersects reports whether the two ranges share at least one position.
// Ranges that only touch at a boundary do not intersect.
func (r Range) Intersects(other Range) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return r.Location < other.Max() && other.Location < r.Max()
}

// Intersection returns the positions covered by both ranges, or None when
// they are disjoint or either operand is invalid.
func (r Range) Intersection(other Range) Range {
	if !r.Intersects(other) {
		return None
	}
	start := max(r.Location, other.Location)
	end := min(r.Max(), other.Max())
	return Range{Location: start, Length: end - start}
}

// Union returns the smallest range covering both operands, including any
// gap between them. An invalid operand is absorbed: the other one is
// returned unchanged.
func (r Range) Union(other Range) Range {
	if !r.IsValid() {
		return other
	}
	if !other.IsValid() {
		return r
	}
	start := min(r.Location, other.Location)
	end := max(r.Max(), other.Max())
	return Range{Location: start, Length: end - start}
}

// Shift returns the range moved by delta positions. Shifting below zero
// yields an invalid range.
func (r Range) Shift(delta int) Range {
	return Range{Location: r.Location + delta, Length: r.Length}
}

// Clamp trims the range to fit within bounds. Ranges entirely outside
// bounds collapse to an empty range at the nearest bound.
func (r Range) Clamp(bounds Range) Range {
	if !r.IsValid() || !bounds.IsValid() {
		return None
	}
	start := min(max(r.Location, bounds.Location), bounds.Max())
	end := min(max(r.Max(), bounds.Location), bounds.Max())
	return Range{Location: start, Length: end - start}
}

// String renders the range in its textual form, for example "{1, 5}".
func (r Range) String() string {
	return fmt.Sprintf("{%d, %d}", r.Location, r.Length)
}

// Parse reads a range from its textual form. Parsing is lenient: the first
// two unsigned integers found become location and length, so "{1, 5}",
// "1 5" and "loc=1 len=5" all parse to the same range.
func Parse(s string) (Range, error) {
	nums := make([]int, 0, 2)
	n, digits := 0, false
	for _, r := range s {
		if unicode.IsDigit(r) {
			if n > (math.MaxInt-9)/10 {
				return Range{}, fmt.Errorf("%w: %q overflows", ErrMalformedRange, s)
			}
			n = n*10 + int(r-'0')
			digits = true
			continue
		}
		if digits {
			nums = append(nums, n)
			n, digits = 0, false
			if len(nums) == 2 {
				break
			}
		}
	}
	if digits && len(nums) < 2 {
		nums = append(nums, n)
	}
	if len(nums) != 2 {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	return Range{Location: nums[0], Length: nums[1]}, nil
}

// MarshalText implements encoding.TextMarshaler using the textual form.
func (r Range) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
