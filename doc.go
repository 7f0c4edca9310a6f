// Package corekit is a toolkit of small, focused value-type packages:
// text ranges addressed by location and length, URLs decomposed into
// percent-encoding-aware components, and article documents with
// front-matter metadata. The library implements modern Go patterns
// including generics for type safety, functional options for
// configuration, and value semantics for the core types.
//
// # Package Organization
//
// Core packages provide the value types and their operations:
//
//	github.com/dmitrymomot/corekit/core/textrange   - Location/length intervals with rune-aware string search
//	github.com/dmitrymomot/corekit/core/urlx        - URL components, percent-encoding and reference resolution
//	github.com/dmitrymomot/corekit/core/frontmatter - Front-matter metadata and article documents
//	github.com/dmitrymomot/corekit/core/config      - Type-safe environment variable loading
//	github.com/dmitrymomot/corekit/core/logger      - Structured logging built on slog
//
// The corekit command under cmd/corekit is a thin inspector CLI over the
// library.
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/corekit/core/urlx
//	go doc -all github.com/dmitrymomot/corekit/core/textrange
package corekit
