// Package textrange provides a location/length interval type for addressing
// contiguous spans of ordered sequences such as strings and slices.
//
// Unlike half-open [start, end) spans, a Range is described by its starting
// position and the number of positions it covers. This representation makes
// empty ranges at any position well-defined and keeps range arithmetic free
// of off-by-one end handling. When the addressed sequence is a string,
// positions count runes, not bytes.
//
// # Features
//
// - Value semantics: Range is a small comparable struct
// - Intersection, union, containment, shifting and clamping
// - Textual form "{location, length}" with lenient parsing
// - encoding.TextMarshaler / TextUnmarshaler round-tripping
// - Rune-aware substring search with case- and diacritic-insensitive modes
// - Rune-aware slicing and in-range replacement of strings
//
// # Usage
//
// Basic range arithmetic:
//
//	import "github.com/dmitrymomot/corekit/core/textrange"
//
//	a := textrange.Range{Location: 2, Length: 4} // positions 2..5
//	b := textrange.Range{Location: 4, Length: 4} // positions 4..7
//
//	a.Intersection(b) // {4, 2}
//	a.Union(b)        // {2, 6}
//	a.Contains(5)     // true
//	a.Max()           // 6, one past the last covered position
//
// Searching within strings:
//
//	r := textrange.Of("Straße in München", "münchen", textrange.IgnoreCase())
//	// r == {10, 7}
//
//	r = textrange.Of("résumé", "resume", textrange.IgnoreDiacritics())
//	// r == {0, 6}
//
//	if r.IsNotFound() {
//		// substring absent
//	}
//
// Applying ranges to strings:
//
//	s := "hello, world"
//	r := textrange.Of(s, "world")
//	word, _ := textrange.Slice(s, r)          // "world"
//	out, _ := textrange.Replace(s, r, "gophers") // "hello, gophers"
//
// Textual form:
//
//	textrange.Range{Location: 1, Length: 5}.String() // "{1, 5}"
//	r, err := textrange.Parse("{1, 5}")
//
// # Not Found
//
// Search functions report a missing match with None, whose location is the
// NotFound sentinel. None is invalid for slicing and replacement and is
// absorbed by Union.
package textrange
