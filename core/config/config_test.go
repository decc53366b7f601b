package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispatch/core/config"
)

type appConfig struct {
	Name  string `env:"DISPATCH_TEST_NAME" envDefault:"dispatchd"`
	Level string `env:"DISPATCH_TEST_LEVEL" envDefault:"info"`
}

type requiredConfig struct {
	Secret string `env:"DISPATCH_TEST_SECRET,required"`
}

type cachedConfig struct {
	Value string `env:"DISPATCH_TEST_CACHED"`
}

func TestLoad(t *testing.T) {
	t.Setenv("DISPATCH_TEST_LEVEL", "debug")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "dispatchd", cfg.Name)
	assert.Equal(t, "debug", cfg.Level)
}

func TestLoadRequiredMissing(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParse)

	assert.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestLoadIsCachedPerType(t *testing.T) {
	t.Setenv("DISPATCH_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	t.Setenv("DISPATCH_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}
