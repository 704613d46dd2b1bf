package network

import "time"

// Config holds feed server configuration
type Config struct {
	// Enabled starts the HTTP listener; a disabled service is a no-op
	Enabled bool

	// Address to bind
	Address string

	// Path of the websocket endpoint
	Path string

	// Timing
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int
}

// DefaultConfig returns local-only defaults with the feed disabled
func DefaultConfig() *Config {
	return &Config{
		Enabled:         false,
		Address:         "127.0.0.1:8787",
		Path:            "/feed",
		WriteTimeout:    5 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 4 * 1024,
		SendQueueSize:   64,
	}
}
