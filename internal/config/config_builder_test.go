package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that non-zero fields of later
// configs win, while zero fields keep earlier values.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{AuthCollection: "users", LogLevel: "info"}},
		&StructuredConfig{App: App{LogLevel: "debug"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "users", cfg.App.AuthCollection)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter: Adapter{RequestTimeout: -time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_AUTH_COLLECTION", "members")
	t.Setenv("ADAPTER_ADDRESS", "http://env-host:8090")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "3s")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "members", b.configs[0].App.AuthCollection)
	assert.Equal(t, "http://env-host:8090", b.configs[0].Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, b.configs[0].Adapter.RequestTimeout)
}

func TestWithEnv_SetsErrorOnBadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.AuthCollection = "json-users"
	payload.Adapter.HTTPAddress = "http://json-host:8090"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-users", b.configs[1].App.AuthCollection)
	assert.Equal(t, "http://json-host:8090", b.configs[1].Adapter.HTTPAddress)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.AuthCollection = "first"
	last := StructuredJSONConfig{}
	last.App.AuthCollection = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.AuthCollection)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig([]string{"list", "posts"})
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultAuthCollection, cfg.App.AuthCollection)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"list", "posts"}, cfg.Command)
}

// TestGetClientConfig_Priority проверяет, что JSON перекрывает флаги,
// а флаги перекрывают окружение.
func TestGetClientConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Storage.DB.DSN = "from-json.db"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("ADAPTER_ADDRESS", "http://env-host:8090")
	t.Setenv("STORAGE_DB_DATABASE_URI", "from-env.db")
	t.Setenv("APP_AUTH_COLLECTION", "env-users")

	cfg, err := GetClientConfig([]string{
		"-a", "http://flag-host:8090",
		"-d", "from-flag.db",
		"-c", path,
		"whoami",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://flag-host:8090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "from-json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-users", cfg.App.AuthCollection)
	assert.Equal(t, []string{"whoami"}, cfg.Command)
}

func TestGetClientConfig_InvalidLogLevel(t *testing.T) {
	_, err := GetClientConfig([]string{"-log-level", "loud"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetClientConfig_InMemoryDSNRejected(t *testing.T) {
	_, err := GetClientConfig([]string{"-d", ":memory:"})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
