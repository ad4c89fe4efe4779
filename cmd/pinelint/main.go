// Command pinelint submits a Pine script file to the lint service and
// prints the returned JSON diagnostics to stdout.
// Usage: pinelint [flags] <path_to_pine_script_file>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kaigouthro/pinelint/internal/app"
	"github.com/kaigouthro/pinelint/internal/cli"
	"github.com/kaigouthro/pinelint/internal/logging"
)

func main() {
	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, cli.Usage)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(app.ExitUsage)
	}

	cfg := app.DefaultConfig()
	cfg.ApplyArgs(args)

	a := app.NewApplication(cfg, args, logging.NewStderrLogger("pinelint"))
	os.Exit(a.Run(context.Background()))
}
