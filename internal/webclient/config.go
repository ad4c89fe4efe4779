package webclient

import "time"

// Config holds transport construction options for the net/http client.
type Config struct {
	// Timeout bounds a whole exchange, connect through body read. Zero means
	// no client-level timeout; the caller's context governs instead.
	Timeout time.Duration
}
