package urlx

import "errors"

// Error variables define the failure scenarios of URL decomposition and
// assembly, so callers can branch with errors.Is.
var (
	// ErrInvalidEscape indicates a percent sign not followed by two
	// hexadecimal digits.
	ErrInvalidEscape = errors.New("invalid percent escape")

	// ErrInvalidScheme indicates a scheme that is empty or contains
	// characters outside ALPHA, DIGIT, "+", "-" and ".".
	ErrInvalidScheme = errors.New("invalid URL scheme")

	// ErrInvalidPort indicates a non-numeric or out-of-range port.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidHost indicates a malformed host, such as an
	// unterminated IP literal or a bare colon in a registered name.
	ErrInvalidHost = errors.New("invalid host")

	// ErrHostRequired indicates userinfo or a port without a host,
	// which cannot be rendered as a valid authority.
	ErrHostRequired = errors.New("userinfo or port require a host")

	// ErrRelativePath indicates a relative path combined with an
	// authority; such a URL has no valid textual form.
	ErrRelativePath = errors.New("path must be empty or absolute when authority is present")

	// ErrAmbiguousPath indicates a path beginning with "//" without an
	// authority; the prefix would be misread as an authority marker.
	ErrAmbiguousPath = errors.New("path must not begin with // when no authority is present")

	// ErrInvalidComponent indicates pre-encoded component text carrying
	// a delimiter that must be percent-encoded in that position.
	ErrInvalidComponent = errors.New("component contains unencoded delimiter")

	// ErrRelativeBase indicates reference resolution against a base
	// that has no scheme.
	ErrRelativeBase = errors.New("base URL must be absolute")
)
