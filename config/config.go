package config

import "time"

type (
	NET struct {
		// ReadBufferSize is the capacity of the per-connection receive buffer. A single header
		// line (request line included) must fit into it, and bodies up to this size are served
		// directly out of it without allocations.
		ReadBufferSize int
		// WriteBufferSize is the initial capacity of the per-connection response buffer. Response
		// bodies that don't fit are written directly after the header block.
		WriteBufferSize int
		// ReadTimeout bounds every single read from the socket. Zero disables it, so a silent
		// peer may hold its connection forever.
		ReadTimeout time.Duration `test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
	}

	Body struct {
		// MaxSize is the absolute cap for a request body. Requests declaring a longer
		// Content-Length are rejected. Bodies longer than NET.ReadBufferSize but within
		// this limit are read into a dedicated heap buffer.
		MaxSize int
	}

	HTTP struct {
		// ServerName is the value of the Server header included into every response.
		ServerName string
	}
)

// Config holds limits and pre-allocations used across the server.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET  NET
	Body Body
	HTTP HTTP
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            8 * 1024,
			WriteBufferSize:           4 * 1024,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Body: Body{
			MaxSize: 64 * 1024,
		},
		HTTP: HTTP{
			ServerName: "Akasabi 0.1.0",
		},
	}
}
