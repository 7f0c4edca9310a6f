package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/corekit/core/config"
)

func TestLoad_Defaults(t *testing.T) {
	type withDefaults struct {
		Dir     string `env:"TEST_CONFIG_DIR" envDefault:"content"`
		Verbose bool   `env:"TEST_CONFIG_VERBOSE" envDefault:"false"`
	}

	var cfg withDefaults
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "content", cfg.Dir)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FromEnvironment(t *testing.T) {
	type fromEnv struct {
		Name string `env:"TEST_CONFIG_NAME"`
		Port int    `env:"TEST_CONFIG_PORT" envDefault:"8080"`
	}

	t.Setenv("TEST_CONFIG_NAME", "corekit")
	t.Setenv("TEST_CONFIG_PORT", "9090")

	var cfg fromEnv
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "corekit", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoad_CachedPerType(t *testing.T) {
	type cached struct {
		Value string `env:"TEST_CONFIG_CACHED" envDefault:"first"`
	}

	var first cached
	require.NoError(t, config.Load(&first))
	require.Equal(t, "first", first.Value)

	// Later environment changes are invisible to the same type.
	t.Setenv("TEST_CONFIG_CACHED", "second")
	var second cached
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type required struct {
		Token string `env:"TEST_CONFIG_REQUIRED_TOKEN,required"`
	}

	var cfg required
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_CONFIG_REQUIRED_TOKEN")
}

func TestMustLoad_Panics(t *testing.T) {
	type required struct {
		Key string `env:"TEST_CONFIG_MUST_KEY,required"`
	}

	var cfg required
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}
