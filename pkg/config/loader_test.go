package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/throttle/pkg/config"
)

type testConfig struct {
	Name     string        `env:"NAME" envDefault:"default_value" yaml:"name"`
	Count    int           `env:"COUNT" envDefault:"42" yaml:"count"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1s" yaml:"interval"`
}

type requiredConfig struct {
	Required string `env:"CFGTEST_REQUIRED_VALUE,required"`
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_DEFAULTS_")))

	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.Equal(t, time.Second, cfg.Interval)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("CFGTEST_ENV_NAME", "from-env")
	t.Setenv("CFGTEST_ENV_COUNT", "7")
	t.Setenv("CFGTEST_ENV_INTERVAL", "250ms")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_ENV_")))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "name: from-file\ncount: 3\n")

	t.Run("file values override defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithPrefix("CFGTEST_FILE_")))

		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, time.Second, cfg.Interval, "missing keys keep the default")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("CFGTEST_FILEENV_COUNT", "99")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithPrefix("CFGTEST_FILEENV_")))

		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 99, cfg.Count)
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg, config.WithFile(filepath.Join(t.TempDir(), "nope.yaml")))
		require.ErrorIs(t, err, config.ErrReadingFile)
	})

	t.Run("malformed file", func(t *testing.T) {
		bad := writeFile(t, "bad.yaml", "count: [not, a, number\n")
		var cfg testConfig
		err := config.Load(&cfg, config.WithFile(bad))
		require.ErrorIs(t, err, config.ErrParsingFile)
	})
}

type nestedConfig struct {
	Label    string `env:"LABEL" envDefault:"demo" yaml:"label"`
	Throttle struct {
		Rate     int           `env:"RATE" envDefault:"10" yaml:"rate"`
		TimeUnit time.Duration `env:"TIME_UNIT" envDefault:"1s" yaml:"time_unit"`
	} `yaml:"throttle"`
}

func TestLoad_FileValuesSurviveEnvDefaults(t *testing.T) {
	path := writeFile(t, "nested.yaml", "throttle:\n  rate: 3\n  time_unit: 2s\n")

	t.Run("defaults do not overwrite the file", func(t *testing.T) {
		var cfg nestedConfig
		require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithPrefix("CFGTEST_NESTED_")))

		assert.Equal(t, 3, cfg.Throttle.Rate)
		assert.Equal(t, 2*time.Second, cfg.Throttle.TimeUnit)
		assert.Equal(t, "demo", cfg.Label)
	})

	t.Run("set variables still win", func(t *testing.T) {
		t.Setenv("CFGTEST_NESTEDENV_TIME_UNIT", "500ms")
		t.Setenv("CFGTEST_NESTEDENV_LABEL", "from-env")

		var cfg nestedConfig
		require.NoError(t, config.Load(&cfg, config.WithFile(path), config.WithPrefix("CFGTEST_NESTEDENV_")))

		assert.Equal(t, 3, cfg.Throttle.Rate)
		assert.Equal(t, 500*time.Millisecond, cfg.Throttle.TimeUnit)
		assert.Equal(t, "from-env", cfg.Label)
	})

	t.Run("dotenv file wins over yaml", func(t *testing.T) {
		dotenv := writeFile(t, "nested.env", "CFGTEST_NESTEDDOT_RATE=7\n")
		t.Cleanup(func() { _ = os.Unsetenv("CFGTEST_NESTEDDOT_RATE") })

		var cfg nestedConfig
		require.NoError(t, config.Load(&cfg,
			config.WithFile(path),
			config.WithEnvFiles(dotenv),
			config.WithPrefix("CFGTEST_NESTEDDOT_"),
		))

		assert.Equal(t, 7, cfg.Throttle.Rate)
		assert.Equal(t, 2*time.Second, cfg.Throttle.TimeUnit)
	})
}

func TestLoad_EnvFiles(t *testing.T) {
	path := writeFile(t, "test.env", "CFGTEST_DOTENV_NAME=from-dotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv("CFGTEST_DOTENV_NAME") })

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path), config.WithPrefix("CFGTEST_DOTENV_")))
	assert.Equal(t, "from-dotenv", cfg.Name)

	err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
	require.ErrorIs(t, err, config.ErrReadingFile)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
	assert.NotPanics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg, config.WithPrefix("CFGTEST_MUST_"))
	})
}
