package textrange

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type searchConfig struct {
	ignoreCase       bool
	backwards        bool
	ignoreDiacritics bool
}

// SearchOption adjusts how Of matches a substring.
type SearchOption func(*searchConfig)

// IgnoreCase matches without regard to letter case, using Unicode simple
// case folding.
func IgnoreCase() SearchOption {
	return func(c *searchConfig) { c.ignoreCase = true }
}

// Backwards returns the range of the last match instead of the first.
func Backwards() SearchOption {
	return func(c *searchConfig) { c.backwards = true }
}

// IgnoreDiacritics matches base characters regardless of combining marks,
// so "resume" matches "résumé". Input is NFD-decomposed and nonspacing
// marks are dropped before comparison.
func IgnoreDiacritics() SearchOption {
	return func(c *searchConfig) { c.ignoreDiacritics = true }
}

// Of returns the rune range of substr within s, or None when substr is
// empty or absent. The returned range always addresses positions of the
// original string, even under diacritic-insensitive folding.
func Of(s, substr string, opts ...SearchOption) Range {
	var cfg searchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	hay, origIdx, total := fold(s, cfg)
	needle, _, _ := fold(substr, cfg)
	if len(needle) == 0 || len(needle) > len(hay) {
		return None
	}

	match := -1
	if cfg.backwards {
		for p := len(hay) - len(needle); p >= 0; p-- {
			if runesEqual(hay[p:p+len(needle)], needle) {
				match = p
				break
			}
		}
	} else {
		for p := 0; p+len(needle) <= len(hay); p++ {
			if runesEqual(hay[p:p+len(needle)], needle) {
				match = p
				break
			}
		}
	}
	if match < 0 {
		return None
	}

	start := origIdx[match]
	end := total
	if next := match + len(needle); next < len(hay) {
		end = origIdx[next]
	}
	return Range{Location: start, Length: end - start}
}

// fold prepares a string for comparison under cfg. It returns the folded
// runes, the original rune position each folded rune came from, and the
// rune count of the original string.
func fold(s string, cfg searchConfig) (runes []rune, origIdx []int, total int) {
	runes = make([]rune, 0, len(s))
	origIdx = make([]int, 0, len(s))
	pos := 0
	for _, r := range s {
		if cfg.ignoreDiacritics {
			for _, d := range norm.NFD.String(string(r)) {
				if unicode.Is(unicode.Mn, d) {
					continue
				}
				runes = append(runes, caseFold(d, cfg))
				origIdx = append(origIdx, pos)
			}
		} else {
			runes = append(runes, caseFold(r, cfg))
			origIdx = append(origIdx, pos)
		}
		pos++
	}
	return runes, origIdx, pos
}

func caseFold(r rune, cfg searchConfig) rune {
	if cfg.ignoreCase {
		return unicode.ToLower(unicode.ToUpper(r))
	}
	return r
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
