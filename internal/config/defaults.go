package config

import "time"

// Defaults match the usual local listener of the capture service.
const (
	DefaultHTTPAddress     = "127.0.0.1:8000"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
