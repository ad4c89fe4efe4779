package facade

// Config holds the stub service's listen options.
type Config struct {
	// Addr is the listen address, e.g. ":9999".
	Addr string
}

// DefaultConfig returns a Config with development defaults.
func DefaultConfig() Config {
	return Config{Addr: ":9999"}
}
