package urlx

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Parse decomposes a URL reference into its components. Both absolute
// URLs and relative references (no scheme, or no authority) are accepted;
// each component is percent-decoded into the raw fields. Punycode hosts
// are converted back to their Unicode form.
func Parse(rawurl string) (*Components, error) {
	c := &Components{}
	rest := rawurl

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		decoded, err := Unescape(rest[i+1:])
		if err != nil {
			return nil, fmt.Errorf("parse fragment: %w", err)
		}
		c.Fragment = decoded
		rest = rest[:i]
	}
	return parsePrefix(c, rest)
}

func parsePrefix(c *Components, rest string) (*Components, error) {
	// Scheme runs up to the first ":" that appears before any "/", "?"
	// or "#". A reference without such a colon has no scheme.
	if i := strings.IndexAny(rest, ":/?"); i >= 0 && rest[i] == ':' {
		scheme := rest[:i]
		if !validScheme(scheme) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidScheme, scheme)
		}
		c.Scheme = strings.ToLower(scheme)
		rest = rest[i+1:]
	}

	if q := strings.IndexByte(rest, '?'); q >= 0 {
		items, err := parseQuery(rest[q+1:])
		if err != nil {
			return nil, err
		}
		c.Query = items
		rest = rest[:q]
	}

	if strings.HasPrefix(rest, "//") {
		authority := rest[2:]
		rest = ""
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			authority, rest = authority[:i], authority[i:]
		}
		if err := parseAuthority(c, authority); err != nil {
			return nil, err
		}
		if !c.hasAuthority() {
			c.EmptyHost = true
		}
	}

	path, err := Unescape(rest)
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}
	c.Path = path
	return c, nil
}

func parseAuthority(c *Components, authority string) error {
	if i := strings.LastIndexByte(authority, '@'); i >= 0 {
		userinfo := authority[:i]
		authority = authority[i+1:]
		user, password, hasPassword := strings.Cut(userinfo, ":")
		decodedUser, err := Unescape(user)
		if err != nil {
			return fmt.Errorf("parse user: %w", err)
		}
		c.User = decodedUser
		if hasPassword {
			decodedPassword, err := Unescape(password)
			if err != nil {
				return fmt.Errorf("parse password: %w", err)
			}
			c.Password = decodedPassword
		}
	}

	host := authority
	port := ""
	if strings.HasPrefix(host, "[") {
		end := strings.IndexByte(host, ']')
		if end < 0 {
			return fmt.Errorf("%w: unterminated IP literal %q", ErrInvalidHost, host)
		}
		rest := host[end+1:]
		host = host[1:end]
		if rest != "" {
			if !strings.HasPrefix(rest, ":") {
				return fmt.Errorf("%w: %q", ErrInvalidPort, rest)
			}
			port = rest[1:]
		}
	} else if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host, port = host[:i], host[i+1:]
		if strings.ContainsRune(host, ':') {
			return fmt.Errorf("%w: %q", ErrInvalidHost, authority)
		}
	}

	decodedHost, err := Unescape(host)
	if err != nil {
		return fmt.Errorf("parse host: %w", err)
	}
	if strings.Contains(decodedHost, "xn--") {
		if unicode, err := idna.Lookup.ToUnicode(decodedHost); err == nil {
			decodedHost = unicode
		}
	}
	c.Host = decodedHost

	if port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return fmt.Errorf("%w: %q", ErrInvalidPort, port)
		}
		c.Port = n
	}
	return nil
}

// parseQuery splits encoded query text into ordered items. Empty
// segments produced by "&&" are dropped.
func parseQuery(raw string) ([]QueryItem, error) {
	if raw == "" {
		return nil, nil
	}
	var items []QueryItem
	for _, seg := range strings.Split(raw, "&") {
		if seg == "" {
			continue
		}
		name, value, hasValue := strings.Cut(seg, "=")
		decodedName, err := Unescape(name)
		if err != nil {
			return nil, fmt.Errorf("parse query: %w", err)
		}
		item := QueryItem{Name: decodedName}
		if hasValue {
			decodedValue, err := Unescape(value)
			if err != nil {
				return nil, fmt.Errorf("parse query: %w", err)
			}
			item.Value = decodedValue
			item.HasValue = true
		}
		items = append(items, item)
	}
	return items, nil
}

func validScheme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
