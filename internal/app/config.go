package app

import (
	"github.com/kaigouthro/pinelint/internal/cli"
	"github.com/kaigouthro/pinelint/internal/linter"
	"github.com/kaigouthro/pinelint/internal/webclient"
)

// Config contains the runtime configuration for a lint run. We intentionally
// keep this small — add more fields as wiring requires them.
type Config struct {
	// Linter configuration
	LinterCfg linter.Config

	// WebClient configuration
	WebClientCfg webclient.Config
}

// DefaultConfig returns a Config populated with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		LinterCfg: linter.DefaultConfig(),
		// Timeout stays zero: the linter bounds each call with its own
		// context deadline.
		WebClientCfg: webclient.Config{},
	}
}

// ApplyArgs copies CLI overrides into the config. Empty/zero args leave the
// corresponding field untouched.
func (c *Config) ApplyArgs(args *cli.Args) {
	if args == nil {
		return
	}
	if args.Endpoint != "" {
		c.LinterCfg.Endpoint = args.Endpoint
	}
	if args.Identity != "" {
		c.LinterCfg.Identity = args.Identity
	}
	if args.Timeout > 0 {
		c.LinterCfg.Timeout = args.Timeout
	}
}
