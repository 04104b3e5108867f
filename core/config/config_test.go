package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/core/config"
)

func TestLoad(t *testing.T) {
	t.Run("parses environment variables", func(t *testing.T) {
		type serverConfig struct {
			Host string `env:"TEST_LOAD_HOST"`
			Port int    `env:"TEST_LOAD_PORT" envDefault:"8080"`
		}

		t.Setenv("TEST_LOAD_HOST", "localhost")
		t.Setenv("TEST_LOAD_PORT", "9090")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("applies defaults for unset variables", func(t *testing.T) {
		type defaultsConfig struct {
			Lang string `env:"TEST_LOAD_DEFAULT_LANG" envDefault:"en"`
		}

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.Lang)
	})

	t.Run("returns error for missing required variables", func(t *testing.T) {
		type requiredConfig struct {
			URL string `env:"TEST_LOAD_REQUIRED_URL,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_LOAD_REQUIRED_URL")
	})

	t.Run("returns error for nil target", func(t *testing.T) {
		err := config.Load[struct{}](nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be nil")
	})

	t.Run("caches loaded configuration per type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_LOAD_CACHED_VALUE"`
		}

		t.Setenv("TEST_LOAD_CACHED_VALUE", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		require.Equal(t, "first", first.Value)

		t.Setenv("TEST_LOAD_CACHED_VALUE", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns configuration on success", func(t *testing.T) {
		type mustConfig struct {
			Name string `env:"TEST_MUSTLOAD_NAME" envDefault:"lingo"`
		}

		var cfg mustConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "lingo", cfg.Name)
	})

	t.Run("panics on failure", func(t *testing.T) {
		type mustFailConfig struct {
			Token string `env:"TEST_MUSTLOAD_REQUIRED_TOKEN,required"`
		}

		var cfg mustFailConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg)
		})
	})
}
