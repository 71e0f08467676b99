package configs

import "time"

// HTTP defines configuration for the HTTP server. RequestTimeout bounds a
// single request, including any wait for a database connection.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RequestTimeout cancels the request context once elapsed. Zero disables it.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}
