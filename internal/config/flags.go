package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses configuration flags from args (without the program
// name). Parsing stops at the first non-flag argument; it and everything
// after it are returned in Command.
//
// Flags:
//
//	-a record store base URL, e.g. http://127.0.0.1:8090
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-d local database DSN
//	-c/-config json file path with configs
//	-collection auth collection name
//	-log-level minimal log level
//	-log-file log file path
//	-otel-endpoint OTLP/HTTP trace collector URL
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		databaseDSN    string
		jsonConfigPath string
		authCollection string
		logLevel       string
		logFile        string
		otelEndpoint   string
	)

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Record store base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&authCollection, "collection", "", "Auth collection name")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&otelEndpoint, "otel-endpoint", "", "OTLP/HTTP trace collector URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AuthCollection: authCollection,
			LogLevel:       logLevel,
			LogFile:        logFile,
			OtelEndpoint:   otelEndpoint,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
		Command:      fs.Args(),
	}, nil
}
