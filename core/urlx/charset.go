package urlx

import (
	"fmt"
	"strings"
)

// Charset identifies the ASCII characters a URL component may carry
// without percent-encoding. Runes outside the set, including every
// non-ASCII rune, are escaped by Escape.
type Charset struct {
	name  string
	table [128]bool
}

// Per-component allowed sets of the generic URL syntax. All of them build
// on the unreserved characters (ALPHA, DIGIT, "-", ".", "_", "~") and the
// sub-delimiters ("!", "$", "&", "'", "(", ")", "*", "+", ",", ";", "=").
var (
	// UserAllowed covers the user part of the userinfo subcomponent.
	UserAllowed = newCharset("user", subDelims)

	// PasswordAllowed covers the password part of the userinfo
	// subcomponent. The ":" separating user from password is excluded.
	PasswordAllowed = newCharset("password", subDelims)

	// HostAllowed covers registered names. IP-literal brackets and the
	// port separator are handled by the authority assembler.
	HostAllowed = newCharset("host", subDelims)

	// PathAllowed covers the path component, keeping segment
	// separators literal.
	PathAllowed = newCharset("path", subDelims+":@/")

	// QueryAllowed covers the query component as a whole.
	QueryAllowed = newCharset("query", subDelims+":@/?")

	// FragmentAllowed covers the fragment component.
	FragmentAllowed = newCharset("fragment", subDelims+":@/?")

	// Query item text must keep the item and pair delimiters encoded;
	// names additionally may not carry a literal "=".
	queryValueAllowed = newCharset("query value", "!$'()*+,;=:@/?")
	queryNameAllowed  = newCharset("query name", "!$'()*+,;:@/?")
)

const subDelims = "!$&'()*+,;="

func newCharset(name, extra string) Charset {
	cs := Charset{name: name}
	for b := byte('a'); b <= 'z'; b++ {
		cs.table[b] = true
	}
	for b := byte('A'); b <= 'Z'; b++ {
		cs.table[b] = true
	}
	for b := byte('0'); b <= '9'; b++ {
		cs.table[b] = true
	}
	for _, r := range "-._~" + extra {
		cs.table[byte(r)] = true
	}
	return cs
}

// Contains reports whether r may appear unescaped in the component this
// set describes.
func (cs Charset) Contains(r rune) bool {
	return r >= 0 && r < 128 && cs.table[byte(r)]
}

// String returns the component name the set describes.
func (cs Charset) String() string {
	return cs.name
}

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes every byte of s that is not allowed by the given
// set. Multi-byte runes are encoded byte by byte.
func Escape(s string, allowed Charset) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 128 && allowed.table[c] {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

// Unescape reverses percent-encoding. Unlike form decoding, "+" stays a
// literal plus sign.
func Unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return "", fmt.Errorf("%w: %q", ErrInvalidEscape, truncate(s[i:], 3))
		}
		b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return b.String(), nil
}

// validEncoding reports whether s is well-formed percent-encoded text.
func validEncoding(s string) bool {
	_, err := Unescape(s)
	return err == nil
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
