// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct
// fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/corekit/core/config"
//
//	type InspectorConfig struct {
//		NoColor     bool   `env:"COREKIT_NO_COLOR" envDefault:"false"`
//		ArticlesDir string `env:"COREKIT_ARTICLES_DIR" envDefault:"content"`
//	}
//
//	func main() {
//		var cfg InspectorConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 InspectorConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 InspectorConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so grouped configuration
// structs stay cheap to load wherever they are needed.
package config
