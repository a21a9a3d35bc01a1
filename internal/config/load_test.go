package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger returns a debug-level logger so config debug output appears in
// verbose test runs.
func testLogger(t *testing.T) *slog.Logger {
	t.Helper()

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func TestLoad_ValidFullConfig(t *testing.T) {
	path := writeTestConfig(t, `
credentials_file = "/etc/dropbox-share/app.json"
recipients = ["alice@example.com", "bob@example.com"]
strict = true
language = "es"

token_url = "https://token.example.com/oauth2/token"
api_url = "https://api.example.com"
request_timeout = "10s"

log_level = "debug"
log_format = "json"
`)

	cfg, err := Load(path, testLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "/etc/dropbox-share/app.json", cfg.CredentialsFile)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, cfg.Recipients)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, "https://token.example.com/oauth2/token", cfg.TokenURL)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, "10s", cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTestConfig(t, `recipients = ["x@y.com"]`)

	cfg, err := Load(path, testLogger(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"x@y.com"}, cfg.Recipients)
	assert.Equal(t, defaultCredentialsFile, cfg.CredentialsFile)
	assert.Equal(t, defaultTokenURL, cfg.TokenURL)
	assert.Equal(t, defaultAPIURL, cfg.APIURL)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeTestConfig(t, `recipients = [`)

	_, err := Load(path, testLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_ValidationErrorsAccumulate(t *testing.T) {
	path := writeTestConfig(t, `
log_level = "loud"
log_format = "xml"
request_timeout = "soon"
`)

	_, err := Load(path, testLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
	assert.Contains(t, err.Error(), "log_format")
	assert.Contains(t, err.Error(), "request_timeout")
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"), testLogger(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestResolve_Precedence(t *testing.T) {
	path := writeTestConfig(t, `
credentials_file = "file.json"
recipients = ["file@example.com"]
`)

	t.Run("file only", func(t *testing.T) {
		cfg, err := Resolve(EnvOverrides{}, CLIOverrides{ConfigPath: path}, testLogger(t))
		require.NoError(t, err)
		assert.Equal(t, "file.json", cfg.CredentialsFile)
		assert.Equal(t, []string{"file@example.com"}, cfg.Recipients)
		assert.False(t, cfg.Strict)
	})

	t.Run("env beats file", func(t *testing.T) {
		env := EnvOverrides{
			ConfigPath:      path,
			CredentialsFile: "env.json",
			Recipients:      []string{"env@example.com"},
		}

		cfg, err := Resolve(env, CLIOverrides{}, testLogger(t))
		require.NoError(t, err)
		assert.Equal(t, "env.json", cfg.CredentialsFile)
		assert.Equal(t, []string{"env@example.com"}, cfg.Recipients)
	})

	t.Run("cli beats env", func(t *testing.T) {
		strict := true
		env := EnvOverrides{
			ConfigPath:      "/does/not/matter.toml",
			CredentialsFile: "env.json",
			Recipients:      []string{"env@example.com"},
		}
		cli := CLIOverrides{
			ConfigPath:      path,
			CredentialsFile: "cli.json",
			Recipients:      []string{"cli@example.com", "cli2@example.com"},
			Strict:          &strict,
		}

		cfg, err := Resolve(env, cli, testLogger(t))
		require.NoError(t, err)
		assert.Equal(t, "cli.json", cfg.CredentialsFile)
		assert.Equal(t, []string{"cli@example.com", "cli2@example.com"}, cfg.Recipients)
		assert.True(t, cfg.Strict)
	})
}

func TestResolve_NoConfigFileUsesDefaults(t *testing.T) {
	cli := CLIOverrides{ConfigPath: filepath.Join(t.TempDir(), "absent.toml")}

	cfg, err := Resolve(EnvOverrides{}, cli, testLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "config.json", cfg.CredentialsFile)
	assert.Empty(t, cfg.Recipients)
}

func TestResolve_InvalidRecipientFromEnv(t *testing.T) {
	env := EnvOverrides{
		ConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		Recipients: []string{"not-an-address"},
	}

	_, err := Resolve(env, CLIOverrides{}, testLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-an-address")
}
