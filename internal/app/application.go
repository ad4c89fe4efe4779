package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kaigouthro/pinelint/internal/cli"
	"github.com/kaigouthro/pinelint/internal/interfaces"
	"github.com/kaigouthro/pinelint/internal/linter"
	"github.com/kaigouthro/pinelint/internal/logging"
	"github.com/kaigouthro/pinelint/internal/webclient"
)

// Exit codes for the pinelint command. The reference tool always exited 0;
// here failures are distinguishable from the shell.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Application is the runtime state container for one lint run. It holds
// config, parsed CLI args and the shared services. Pass Application into
// modules that need access rather than using package-level variables.
type Application struct {
	Config *Config
	Args   *cli.Args
	Logger interfaces.Logger

	// Stdout receives only the pretty-printed lint result; diagnostics go
	// to the logger. Defaults to os.Stdout.
	Stdout io.Writer

	// WebClient is optional; Run constructs a nethttp client when nil.
	// Tests inject fakes here.
	WebClient interfaces.WebClient
}

// NewApplication constructs an Application from the provided parts.
// Keep the constructor simple: pass already-constructed parts so this
// function is easy to test.
func NewApplication(cfg *Config, args *cli.Args, logger interfaces.Logger) *Application {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewStderrLogger("pinelint")
	}
	return &Application{
		Config: cfg,
		Args:   args,
		Logger: logger,
		Stdout: os.Stdout,
	}
}

// Run performs one lint pass: read the script file, submit it, print the
// decoded result. On any failure nothing is written to Stdout; the
// diagnostic has already gone to the logger.
func (a *Application) Run(ctx context.Context) int {
	script, err := os.ReadFile(a.Args.ScriptPath)
	if err != nil {
		a.Logger.Error("reading script file",
			interfaces.Field{Key: "path", Value: a.Args.ScriptPath},
			interfaces.Field{Key: "error", Value: err.Error()})
		return ExitFailure
	}

	wc := a.WebClient
	if wc == nil {
		nc, err := webclient.NewNetHTTPClient(a.Config.WebClientCfg, a.Logger, nil)
		if err != nil {
			a.Logger.Error("creating webclient", interfaces.Field{Key: "error", Value: err.Error()})
			return ExitFailure
		}
		defer nc.Close()
		wc = nc
	}

	client, err := linter.New(a.Config.LinterCfg, wc, a.Logger)
	if err != nil {
		a.Logger.Error("creating lint client", interfaces.Field{Key: "error", Value: err.Error()})
		return ExitFailure
	}

	result, err := client.Lint(ctx, string(script))
	if err != nil {
		// The client already emitted the diagnostic.
		return ExitFailure
	}

	out, err := result.Indent()
	if err != nil {
		a.Logger.Error("encoding lint result", interfaces.Field{Key: "error", Value: err.Error()})
		return ExitFailure
	}
	fmt.Fprintln(a.Stdout, string(out))
	return ExitOK
}
