package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every recognised variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range append([]string{ConfigPathEnv}, keysOf(envKeys)...) {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func keysOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8082", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, "breeds.csv", cfg.Catalog.Path)
	assert.Equal(t, 1, cfg.Catalog.HeaderRow)
	assert.Equal(t, "auto", cfg.Catalog.Encoding)
	assert.Equal(t, int64(64*1024), cfg.MaxBodyBytes())
	assert.False(t, cfg.Catalog.Watch)
	assert.Empty(t, cfg.Aliases)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 9000
log_level: debug
allow_origins: [http://a.example, http://b.example]
catalog:
  path: data/breeds.xlsx
  table: dogs
aliases:
  댕댕이: 푸들
  st. bernard: 세인트 버나드
`), 0o644))

	t.Setenv(ConfigPathEnv, path)
	t.Setenv("PORT", "9100")
	t.Setenv("CATALOG_WATCH", "true")
	t.Setenv("CATALOG_HEADER_ROW", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port, "env wins over file")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowOrigins)
	assert.Equal(t, "data/breeds.xlsx", cfg.Catalog.Path)
	assert.Equal(t, "dogs", cfg.Catalog.Table)
	assert.Equal(t, 2, cfg.Catalog.HeaderRow)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, map[string]string{"댕댕이": "푸들", "st. bernard": "세인트 버나드"}, cfg.Aliases)
}

func TestLoad_OriginsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOW_ORIGINS", "http://a.example, ,http://b.example")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")
	_, err := Load()
	assert.ErrorContains(t, err, "port")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	assert.NoError(t, cfg.Validate())

	cfg.Catalog.HeaderRow = 0
	cfg.RateLimitRPM = -1
	err := cfg.Validate()
	assert.ErrorContains(t, err, "header_row")
	assert.ErrorContains(t, err, "rate_limit_rpm")
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	cfg := defaults()
	cfg.LogFile = filepath.Join(t.TempDir(), "nested", "svc.log")
	cfg.LogLevel = "warn"

	logger := SetupLogger(cfg, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.DirExists(t, filepath.Dir(cfg.LogFile))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	cfg := defaults()
	cfg.LogFile = ""
	cfg.LogLevel = "bogus"
	logger := SetupLogger(cfg, &buf)
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}
