package linter

import "time"

const (
	// DefaultEndpoint is TradingView's public Pine translation facade, which
	// doubles as the linting endpoint: it returns the script's diagnostics
	// as JSON.
	DefaultEndpoint = "https://pine-facade.tradingview.com/pine-facade/translate_light?user_name=Guest&v=3"

	// DefaultIdentity is the User-Agent presented when no override is
	// configured. The facade expects a browser-looking agent.
	DefaultIdentity = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 PineLinterMini/1.0"

	// DefaultTimeout bounds the whole lint exchange.
	DefaultTimeout = 20 * time.Second

	// Origin/Referer pair the facade expects from its own front end.
	serviceOrigin  = "https://www.tradingview.com"
	serviceReferer = "https://www.tradingview.com/"

	// bodyPreviewLimit caps response-body excerpts quoted in diagnostics.
	bodyPreviewLimit = 200
)

// Config holds the per-client settings. The zero value works: empty or zero
// fields fall back to the defaults above.
type Config struct {
	// Endpoint is the lint service URL.
	Endpoint string

	// Identity is the opaque client-identity string sent as User-Agent.
	Identity string

	// Timeout bounds each Lint call end to end.
	Timeout time.Duration
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Identity: DefaultIdentity,
		Timeout:  DefaultTimeout,
	}
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Identity == "" {
		c.Identity = DefaultIdentity
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
