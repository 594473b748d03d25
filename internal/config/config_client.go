package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to fields left empty by every source.
const (
	DefaultHTTPAddress    = "http://127.0.0.1:8090"
	DefaultRequestTimeout = 15 * time.Second
	DefaultAuthCollection = "users"
	DefaultDSN            = "records.db"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// AuthCollection is the auth collection used by login and register.
	AuthCollection string
	// LogLevel is the minimal log level.
	LogLevel string
	// LogFile is the client log file path.
	LogFile string
	// OtelEndpoint is the trace collector URL; empty disables tracing.
	OtelEndpoint string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the record store base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the record store address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Command is the CLI sub-command with its operands.
	Command []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, fills defaults for anything left empty and
// validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			AuthCollection: cfg.App.AuthCollection,
			LogLevel:       cfg.App.LogLevel,
			LogFile:        cfg.App.LogFile,
			OtelEndpoint:   cfg.App.OtelEndpoint,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Command: cfg.Command,
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.App.AuthCollection == "" {
		clientCfg.App.AuthCollection = DefaultAuthCollection
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = DefaultDSN
	}

	return clientCfg
}
