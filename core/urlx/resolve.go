package urlx

import "strings"

// Resolve transforms a reference into absolute form against a base URL,
// following the strict reference-resolution algorithm: a scheme on the
// reference wins outright, an authority resets path and query, a relative
// path is merged into the base path with dot segments removed. The base
// must be absolute. Neither input is mutated.
func Resolve(base, ref *Components) (*Components, error) {
	if base.Scheme == "" {
		return nil, ErrRelativeBase
	}

	if ref.Scheme != "" {
		out := cloneComponents(ref)
		out.Path = removeDotSegments(out.Path)
		return out, nil
	}

	out := &Components{Scheme: base.Scheme, Fragment: ref.Fragment}

	if ref.hasAuthority() {
		copyAuthority(out, ref)
		out.Path = removeDotSegments(ref.Path)
		out.Query = cloneQuery(ref.Query)
		return out, nil
	}

	copyAuthority(out, base)
	switch {
	case ref.Path == "":
		out.Path = base.Path
		if len(ref.Query) > 0 {
			out.Query = cloneQuery(ref.Query)
		} else {
			out.Query = cloneQuery(base.Query)
		}
	case strings.HasPrefix(ref.Path, "/"):
		out.Path = removeDotSegments(ref.Path)
		out.Query = cloneQuery(ref.Query)
	default:
		out.Path = removeDotSegments(mergePaths(base, ref.Path))
		out.Query = cloneQuery(ref.Query)
	}
	return out, nil
}

func cloneComponents(c *Components) *Components {
	out := *c
	out.Query = cloneQuery(c.Query)
	return &out
}

func cloneQuery(items []QueryItem) []QueryItem {
	if items == nil {
		return nil
	}
	out := make([]QueryItem, len(items))
	copy(out, items)
	return out
}

func copyAuthority(dst, src *Components) {
	dst.User = src.User
	dst.Password = src.Password
	dst.Host = src.Host
	dst.Port = src.Port
	dst.EmptyHost = src.EmptyHost
}

// mergePaths joins a relative reference path onto the base path: against
// an authority with an empty path the reference becomes absolute,
// otherwise it replaces everything after the base path's last slash.
func mergePaths(base *Components, refPath string) string {
	if base.hasAuthority() && base.Path == "" {
		return "/" + refPath
	}
	if i := strings.LastIndexByte(base.Path, '/'); i >= 0 {
		return base.Path[:i+1] + refPath
	}
	return refPath
}

// removeDotSegments resolves "." and ".." segments. Dot segments are
// recognized literally; percent-encoded dots survive parsing as plain
// dots and are treated the same.
func removeDotSegments(path string) string {
	if path == "" {
		return ""
	}
	var out []string
	rooted := strings.HasPrefix(path, "/")
	trailingSlash := false

	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		switch seg {
		case ".":
			trailingSlash = true
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
			trailingSlash = true
		default:
			out = append(out, seg)
			trailingSlash = false
		}
	}

	joined := strings.Join(out, "/")
	if trailingSlash && !strings.HasSuffix(joined, "/") {
		joined += "/"
	}
	if rooted && !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	return joined
}
