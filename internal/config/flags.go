package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b backend base URL
//	-k backend anon key
//	-d local cache database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-poll-interval feed poll interval (e.g., "30s")
//	-page-size maximum rows per feed query
func ParseFlags() *StructuredConfig {
	var backendURL string
	var anonKey string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var pageSize int

	flag.StringVar(&backendURL, "b", "", "Backend base URL")
	flag.StringVar(&anonKey, "k", "", "Backend anon key")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Feed poll interval (e.g., 30s)")
	flag.IntVar(&pageSize, "page-size", 0, "Maximum rows per feed query")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			BaseURL:        backendURL,
			AnonKey:        anonKey,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Feed: Feed{
			PollInterval: pollInterval,
			PageSize:     pageSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}
