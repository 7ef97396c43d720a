package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userconfig/pkg/config"
)

type testConfig struct {
	Level   string `env:"UCTEST_LEVEL" envDefault:"info"`
	Size    int    `env:"UCTEST_SIZE" envDefault:"42"`
	Verbose bool   `env:"UCTEST_VERBOSE" envDefault:"false"`
}

type prefixedConfig struct {
	Policy string `env:"POLICY" envDefault:"strict"`
}

type requiredConfig struct {
	Required string `env:"UCTEST_REQUIRED,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, 42, cfg.Size)
	assert.False(t, cfg.Verbose)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("UCTEST_LEVEL", "debug")
	t.Setenv("UCTEST_SIZE", "100")
	t.Setenv("UCTEST_VERBOSE", "true")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, 100, cfg.Size)
	assert.True(t, cfg.Verbose)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("UCTEST_SIZE", "not-a-number")

	var cfg testConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_EnvFiles(t *testing.T) {
	t.Run("file values fill unset variables", func(t *testing.T) {
		path := writeEnvFile(t, "UCTEST_LEVEL=warn\nUCTEST_SIZE=7\n")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))

		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, 7, cfg.Size)
		_, set := os.LookupEnv("UCTEST_LEVEL")
		assert.False(t, set, "process environment must not be modified")
	})

	t.Run("process environment wins", func(t *testing.T) {
		t.Setenv("UCTEST_LEVEL", "error")
		path := writeEnvFile(t, "UCTEST_LEVEL=warn\n")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, "error", cfg.Level)
	})

	t.Run("earlier file wins", func(t *testing.T) {
		first := writeEnvFile(t, "UCTEST_SIZE=1\n")
		second := writeEnvFile(t, "UCTEST_SIZE=2\nUCTEST_VERBOSE=true\n")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(first, second)))
		assert.Equal(t, 1, cfg.Size)
		assert.True(t, cfg.Verbose)
	})

	t.Run("required value from file", func(t *testing.T) {
		path := writeEnvFile(t, "UCTEST_REQUIRED=present\n")

		var cfg requiredConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvFiles(path)))
		assert.Equal(t, "present", cfg.Required)
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "absent.env")

		var cfg testConfig
		err := config.Load(&cfg, config.WithEnvFiles(missing))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)

		require.NoError(t, config.Load(&cfg, config.WithOptionalEnvFiles(missing)))
		assert.Equal(t, "info", cfg.Level)
	})
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("USERCONFIG_POLICY", "compat")

	var cfg prefixedConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("USERCONFIG_")))
	assert.Equal(t, "compat", cfg.Policy)
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	assert.NotPanics(t, func() {
		var cfg testConfig
		config.MustLoad(&cfg)
	})
}
