package urlx

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// QueryItem is a single name/value pair of a query string. Order and
// duplicates are preserved by Components. HasValue distinguishes "?flag"
// (false) from "?flag=" (true with an empty Value).
type QueryItem struct {
	Name     string
	Value    string
	HasValue bool
}

// Item constructs a query item with a value.
func Item(name, value string) QueryItem {
	return QueryItem{Name: name, Value: value, HasValue: true}
}

// Flag constructs a value-less query item.
func Flag(name string) QueryItem {
	return QueryItem{Name: name}
}

// Components holds the parts of a URL in decoded form. Mutating a field
// and calling String is the way to rewrite a URL without string surgery.
// A Port of zero means the URL carries no explicit port.
type Components struct {
	Scheme   string
	User     string
	Password string
	Host     string
	Port     int
	Path     string
	Query    []QueryItem
	Fragment string

	// EmptyHost marks an authority that is present but empty, as in
	// "file:///etc/hosts". It keeps such URLs round-tripping even
	// though every authority field is zero.
	EmptyHost bool
}

func (c *Components) hasAuthority() bool {
	return c.Host != "" || c.Port != 0 || c.User != "" || c.Password != "" || c.EmptyHost
}

// EncodedUser returns the percent-encoded user subcomponent.
func (c *Components) EncodedUser() string {
	return Escape(c.User, UserAllowed)
}

// EncodedPassword returns the percent-encoded password subcomponent.
func (c *Components) EncodedPassword() string {
	return Escape(c.Password, PasswordAllowed)
}

// EncodedHost returns the host in its wire form. Internationalized
// hostnames are converted to their IDNA (punycode) ASCII form; IPv6
// literals are bracketed. Hosts that fail IDNA mapping fall back to
// percent-encoding.
func (c *Components) EncodedHost() string {
	if strings.ContainsRune(c.Host, ':') {
		return "[" + c.Host + "]"
	}
	if isASCII(c.Host) {
		return Escape(c.Host, HostAllowed)
	}
	ascii, err := idna.Lookup.ToASCII(c.Host)
	if err != nil {
		return Escape(c.Host, HostAllowed)
	}
	return ascii
}

// EncodedPath returns the percent-encoded path, with segment separators
// kept literal.
func (c *Components) EncodedPath() string {
	return Escape(c.Path, PathAllowed)
}

// EncodedQuery renders the query items as a percent-encoded query string,
// preserving order, duplicates and value-less items. It returns the empty
// string when there are no items.
func (c *Components) EncodedQuery() string {
	if len(c.Query) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range c.Query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(Escape(item.Name, queryNameAllowed))
		if item.HasValue {
			b.WriteByte('=')
			b.WriteString(Escape(item.Value, queryValueAllowed))
		}
	}
	return b.String()
}

// EncodedFragment returns the percent-encoded fragment.
func (c *Components) EncodedFragment() string {
	return Escape(c.Fragment, FragmentAllowed)
}

// EncodedAuthority returns the full authority component in wire form, or
// the empty string when no authority parts are set. The result does not
// include the leading "//".
func (c *Components) EncodedAuthority() string {
	if !c.hasAuthority() {
		return ""
	}
	var b strings.Builder
	if c.User != "" || c.Password != "" {
		b.WriteString(c.EncodedUser())
		if c.Password != "" {
			b.WriteByte(':')
			b.WriteString(c.EncodedPassword())
		}
		b.WriteByte('@')
	}
	b.WriteString(c.EncodedHost())
	if c.Port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(c.Port))
	}
	return b.String()
}

// SetEncodedPath decodes pre-encoded path text into the Path field. The
// text must be well-formed percent-encoding and must not carry query or
// fragment delimiters.
func (c *Components) SetEncodedPath(s string) error {
	if strings.ContainsAny(s, "?#") {
		return fmt.Errorf("%w: path %q", ErrInvalidComponent, s)
	}
	decoded, err := Unescape(s)
	if err != nil {
		return err
	}
	c.Path = decoded
	return nil
}

// SetEncodedQuery parses pre-encoded query text into the Query items,
// replacing any existing items. The text must not carry a fragment
// delimiter.
func (c *Components) SetEncodedQuery(s string) error {
	if strings.ContainsRune(s, '#') {
		return fmt.Errorf("%w: query %q", ErrInvalidComponent, s)
	}
	items, err := parseQuery(s)
	if err != nil {
		return err
	}
	c.Query = items
	return nil
}

// SetEncodedFragment decodes pre-encoded fragment text into the Fragment
// field.
func (c *Components) SetEncodedFragment(s string) error {
	if !validEncoding(s) {
		return fmt.Errorf("%w: fragment %q", ErrInvalidEscape, s)
	}
	decoded, _ := Unescape(s)
	c.Fragment = decoded
	return nil
}

// QueryValue returns the value of the first query item with the given
// name. The second result is false when no such item exists.
func (c *Components) QueryValue(name string) (string, bool) {
	for _, item := range c.Query {
		if item.Name == name {
			return item.Value, true
		}
	}
	return "", false
}

// AddQuery appends a name/value item, keeping existing items intact.
func (c *Components) AddQuery(name, value string) {
	c.Query = append(c.Query, Item(name, value))
}

// SetQuery replaces every item with the given name by a single
// name/value item, appending it when none exists. Relative order of the
// remaining items is preserved.
func (c *Components) SetQuery(name, value string) {
	out := c.Query[:0]
	replaced := false
	for _, item := range c.Query {
		if item.Name != name {
			out = append(out, item)
			continue
		}
		if !replaced {
			out = append(out, Item(name, value))
			replaced = true
		}
	}
	if !replaced {
		out = append(out, Item(name, value))
	}
	c.Query = out
}

// DelQuery removes every item with the given name.
func (c *Components) DelQuery(name string) {
	out := c.Query[:0]
	for _, item := range c.Query {
		if item.Name != name {
			out = append(out, item)
		}
	}
	c.Query = out
}

// String assembles the components into their textual URL form, enforcing
// the structural constraints of the generic syntax.
func (c *Components) String() (string, error) {
	if c.Scheme != "" && !validScheme(c.Scheme) {
		return "", fmt.Errorf("%w: %q", ErrInvalidScheme, c.Scheme)
	}
	if c.Port < 0 || c.Port > 65535 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	if c.Host == "" && (c.User != "" || c.Password != "" || c.Port != 0) {
		return "", ErrHostRequired
	}

	var b strings.Builder
	if c.Scheme != "" {
		b.WriteString(strings.ToLower(c.Scheme))
		b.WriteByte(':')
	}
	if c.hasAuthority() {
		if c.Path != "" && !strings.HasPrefix(c.Path, "/") {
			return "", fmt.Errorf("%w: %q", ErrRelativePath, c.Path)
		}
		b.WriteString("//")
		b.WriteString(c.EncodedAuthority())
	} else if strings.HasPrefix(c.Path, "//") {
		return "", fmt.Errorf("%w: %q", ErrAmbiguousPath, c.Path)
	}
	b.WriteString(c.EncodedPath())
	if q := c.EncodedQuery(); q != "" {
		b.WriteByte('?')
		b.WriteString(q)
	}
	if c.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(c.EncodedFragment())
	}
	return b.String(), nil
}

// MustString assembles the URL and panics on invalid components. Intended
// for statically known values.
func (c *Components) MustString() string {
	s, err := c.String()
	if err != nil {
		panic(err)
	}
	return s
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}
