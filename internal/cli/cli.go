package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// Usage is the one-line usage message printed on bad invocations.
const Usage = "usage: pinelint [flags] <path_to_pine_script_file>"

// ErrUsage is returned when no script file was given.
var ErrUsage = errors.New(Usage)

// Args are the command-line arguments for a single lint run.
// Keep this small for now — add fields as modules need them.
type Args struct {
	// ScriptPath is the file whose contents are sent to the lint service.
	ScriptPath string

	// Endpoint overrides the lint service URL; empty means the built-in default.
	Endpoint string

	// Identity overrides the outbound User-Agent; empty means the built-in default.
	Identity string

	// Timeout overrides the whole-request timeout; 0 means "use config default".
	Timeout time.Duration

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns Args. Use in tests by passing
// arbitrary slices. The function is deterministic and does not read os.Args.
func ParseArgs(args []string) (*Args, error) {
	fs := flag.NewFlagSet("pinelint", flag.ContinueOnError)
	var (
		endpoint = fs.String("endpoint", "", "Lint service URL (empty = built-in default)")
		identity = fs.String("identity", "", "User-Agent presented to the service (empty = built-in default)")
		timeout  = fs.Duration("timeout", 0, "Whole-request timeout (0 = default)")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		// Flag parsing errors are useful to return to caller
		return nil, err
	}

	rest := fs.Args()
	if len(rest) == 0 || strings.TrimSpace(rest[0]) == "" {
		return nil, ErrUsage
	}
	if len(rest) > 1 {
		return nil, fmt.Errorf("expected exactly one script file, got %d positional arguments", len(rest))
	}

	return &Args{
		ScriptPath: rest[0],
		Endpoint:   *endpoint,
		Identity:   *identity,
		Timeout:    *timeout,
		RawArgs:    args,
	}, nil
}
