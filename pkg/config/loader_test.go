package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type demoConfig struct {
	Addr     string        `env:"ADDR" envDefault:":8080"`
	Schema   string        `env:"SCHEMA"`
	LogLevel string        `env:"LOG_LEVEL" envDefault:"info"`
	Tags     []string      `env:"TAGS" envSeparator:","`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Token string `env:"TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg demoConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("prefixed environment", func(t *testing.T) {
		var cfg demoConfig
		err := config.Load(&cfg,
			config.WithPrefix("FORMDEMO_"),
			config.WithEnvironment(map[string]string{
				"FORMDEMO_ADDR":    ":3000",
				"FORMDEMO_TIMEOUT": "1m",
				"ADDR":             ":1111",
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":3000", cfg.Addr)
		assert.Equal(t, time.Minute, cfg.Timeout)
	})

	t.Run("env files fill unset variables", func(t *testing.T) {
		var cfg demoConfig
		err := config.Load(&cfg,
			config.WithPrefix("FORMDEMO_"),
			config.WithEnvFiles("testdata/.env.local", "testdata/.env.base"),
			config.WithEnvironment(map[string]string{"FORMDEMO_LOG_LEVEL": "warn"}),
		)
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr, "earlier file wins")
		assert.Equal(t, "forms/signup.yaml", cfg.Schema)
		assert.Equal(t, "warn", cfg.LogLevel, "environment wins over files")
		assert.Equal(t, []string{"a", "b"}, cfg.Tags)
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("FORMDEMO_SCHEMA", "from-process.yaml")
		var cfg demoConfig
		err := config.Load(&cfg, config.WithPrefix("FORMDEMO_"), config.WithEnvFiles("testdata/.env.local"))
		require.NoError(t, err)
		assert.Equal(t, "from-process.yaml", cfg.Schema)
	})

	t.Run("missing env file", func(t *testing.T) {
		var cfg demoConfig
		err := config.Load(&cfg, config.WithEnvFiles("testdata/missing.env"))
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value", func(t *testing.T) {
		var cfg demoConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"TIMEOUT": "soon"}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *demoConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg demoConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}
