package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, pattern string, data []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeTempFile(t, "config-*.json", data)
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/vidly"}},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_MissingSignKey(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/vidly"}},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultPasswordCost, cfg.App.PasswordCost)
	assert.Equal(t, defaultOverdueSchedule, cfg.Workers.OverdueSchedule)
	assert.Equal(t, 14*24*time.Hour, cfg.Workers.OverdueAfter)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

// TestBuild_LaterSourceWins verifies that a later non-zero value overrides an
// earlier one while zero values leave it untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.Server.HTTPAddress = ":8080"
	first.App.Version = "1.0.0"
	b.configs = append(b.configs,
		first,
		&StructuredConfig{Server: Server{HTTPAddress: ":9090"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "1.0.0", cfg.App.Version)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "localhost:3000", "-d", "dsn"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:3000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "dsn", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_LoadsJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"token_sign_key": "from-file", "token_duration": "2h"},
		"storage": map[string]any{"db": map[string]any{"dsn": "file-dsn"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	cfg, err := b.withFile().build()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "file-dsn", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.ConfigFilePath)
}

func TestWithFile_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		ConfigFilePath: filepath.Join(t.TempDir(), "missing.json"),
	})

	b.withFile()
	assert.Error(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithDotEnv_ThenWithEnv(t *testing.T) {
	path := writeTempFile(t, "*.env", []byte("APP_VERSION=from-dotenv\n"))
	t.Setenv("APP_VERSION", "")
	require.NoError(t, os.Unsetenv("APP_VERSION"))

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.Version)
}
