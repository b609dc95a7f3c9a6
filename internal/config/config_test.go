package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		API: API{BaseURL: "https://api.example.com/v1"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"最小配置有效", func(c *Config) {}, ""},
		{"缺少 BaseURL", func(c *Config) { c.API.BaseURL = "" }, "API.BaseURL 不能为空"},
		{"BaseURL 协议错误", func(c *Config) { c.API.BaseURL = "ftp://example.com" }, "http://"},
		{"超时为负", func(c *Config) { c.API.Timeout = -1 }, "API.Timeout"},
		{"代理缺少 Host", func(c *Config) { c.Sock5Proxy.Enable = true; c.Sock5Proxy.Port = 1080 }, "Sock5Proxy.Host"},
		{"代理端口无效", func(c *Config) { c.Sock5Proxy.Enable = true; c.Sock5Proxy.Host = "127.0.0.1" }, "Sock5Proxy.Port"},
		{"语速越界", func(c *Config) { c.Speech.Rate = 3 }, "Speech.Rate"},
		{"音调越界", func(c *Config) { c.Speech.Pitch = 0.1 }, "Speech.Pitch"},
		{"日志级别无效", func(c *Config) { c.Log.Level = "verbose" }, "Log.Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	c := validConfig()
	require.NoError(t, c.Validate())

	assert.Equal(t, 120, c.API.Timeout)
	assert.Equal(t, "espeak-ng", c.Speech.Binary)
	assert.Equal(t, 1.0, c.Speech.Rate)
	assert.Equal(t, 1.0, c.Speech.Pitch)
	assert.Equal(t, "data/vidsummify.db", c.Storage.Path)
	assert.Equal(t, "logs", c.Log.Dir)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "*/5 * * * *", c.Refresh.Cron)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
API:
  BaseURL: https://api.example.com/v1
  Timeout: 30
Speech:
  Voice: en-us
  Rate: 1.5
Log:
  Level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", c.API.BaseURL)
	assert.Equal(t, 30, c.API.Timeout)
	assert.Equal(t, "en-us", c.Speech.Voice)
	assert.Equal(t, 1.5, c.Speech.Rate)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("API:\n  BaseURL: https://a.example.com\n"), 0644))

	t.Setenv("VIDSUMMIFY_API_BASE_URL", "https://b.example.com")
	t.Setenv("VIDSUMMIFY_LOG_LEVEL", "warn")

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://b.example.com", c.API.BaseURL)
	assert.Equal(t, "warn", c.Log.Level)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
