package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper resets viper to a clean state for each test
func resetViper() {
	viper.Reset()
}

// chdirTemp moves the test into an empty temporary directory
func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(oldWd)
	})
	return tmpDir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadConfigDefaults(t *testing.T) {
	resetViper()
	chdirTemp(t)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.True(t, config.Parallel)
	assert.Empty(t, config.Disabled)
	assert.False(t, config.Review.ProblemsOnly)
	assert.Equal(t, "none", config.Store.Driver)
	assert.Equal(t, "localhost:6379", config.Store.Redis.Address)
	assert.Equal(t, "seoscore:", config.Store.Redis.Prefix)
}

func TestLoadConfigFromJSON(t *testing.T) {
	resetViper()
	dir := chdirTemp(t)
	writeFile(t, dir, ".seoscorerc.json", `{
		"format": "console",
		"timeout": "5s",
		"parallel": false,
		"disabled": ["seo/titleWidth", "readability/*"],
		"review": {"problemsOnly": true, "exclude": ["text*"]},
		"store": {"driver": "redis", "redis": {"address": "redis:6379", "db": 2}}
	}`)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "console", config.Format)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.False(t, config.Parallel)
	assert.Equal(t, []string{"seo/titleWidth", "readability/*"}, config.Disabled)
	assert.True(t, config.Review.ProblemsOnly)
	assert.Equal(t, []string{"text*"}, config.Review.Exclude)
	assert.Equal(t, "redis", config.Store.Driver)
	assert.Equal(t, "redis:6379", config.Store.Redis.Address)
	assert.Equal(t, 2, config.Store.Redis.DB)
}

func TestLoadConfigFromYAML(t *testing.T) {
	resetViper()
	dir := chdirTemp(t)
	writeFile(t, dir, ".seoscorerc.yaml", "logLevel: debug\nlogFormat: console\nstore:\n  driver: memory\n")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "console", config.LogFormat)
	assert.Equal(t, "memory", config.Store.Driver)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	resetViper()
	dir := chdirTemp(t)
	writeFile(t, dir, ".seoscorerc.json", `{"format": "console", "logLevel": "info"}`)
	t.Setenv("SEOSCORE_FORMAT", "json")
	t.Setenv("SEOSCORE_STORE_REDIS_PREFIX", "cms:")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, "cms:", config.Store.Redis.Prefix)
}

func TestLoadConfigDotEnv(t *testing.T) {
	resetViper()
	dir := chdirTemp(t)
	writeFile(t, dir, ".env", "SEOSCORE_LOGLEVEL=error\n")
	t.Setenv("SEOSCORE_LOGLEVEL", "")
	require.NoError(t, os.Unsetenv("SEOSCORE_LOGLEVEL"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "error", config.LogLevel)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"format", `{"format": "markdown"}`, "Format"},
		{"log level", `{"logLevel": "trace"}`, "LogLevel"},
		{"timeout", `{"timeout": "0s"}`, "Timeout"},
		{"driver", `{"store": {"driver": "postgres"}}`, "Store.Driver"},
		{"redis address", `{"store": {"redis": {"address": ""}}}`, "Store.Redis.Address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			dir := chdirTemp(t)
			writeFile(t, dir, ".seoscorerc.json", tt.content)

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
