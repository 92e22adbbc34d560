// Command limit submits a Bellande Limit request to the web API or to the
// Bellande_Limit executable installed next to it.
//
// Usage:
//
//	BELLANDE_LIMIT_AUTH_KEY=... limit --node0 '[0,0]' --node1 '[10,10]' \
//	    --environment '[100,100]' --size '[1,1]' --goal '[10,10]' [flags]
//
// Flags:
//
//	-node0, -node1, -environment, -size, -goal string   JSON arrays of numbers (required)
//	-obstacles string       JSON array of {"position": [...], "dimensions": [...]}
//	-search-radius float    Search radius for obstacle detection (default 50)
//	-sample-points int      Number of sample points for obstacle detection (default 20)
//	-use-executable         Run the local Bellande_Limit executable instead of the API
//	-endpoint string        API URL (overrides BELLANDE_LIMIT_ENDPOINT)
//	-executable string      Executable path (overrides BELLANDE_LIMIT_EXECUTABLE)
//	-raw                    Print the API response exactly as received
//	-no-color               Disable colored diagnostics
//	-verbose                Log request lifecycle to stderr
//
// Environment:
//
//	BELLANDE_LIMIT_AUTH_KEY    API authorization key (required for the API)
//	BELLANDE_LIMIT_PASSCODE    executable passcode (required with -use-executable)
//	BELLANDE_LIMIT_ENDPOINT    API URL
//	BELLANDE_LIMIT_EXECUTABLE  executable path
//	BELLANDE_LIMIT_PATH        extra directories (or glob patterns) searched for the executable
//
// A .env file in the working directory is loaded first when present.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bellande/limit"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "limit: load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Getenv, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit status. The
// environment is only reached through getenv.
func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	st := newStyles(stderr, opts.noColor || getenv("NO_COLOR") != "")

	cfg, err := resolveConfig(opts, getenv)
	if err != nil {
		st.printError(stderr, err)
		return 1
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(ctx, cfg, stdout, logger); err != nil {
		st.printError(stderr, err)
		return 1
	}
	return 0
}

// execute builds the configured provider, runs the request and prints the
// result to stdout.
func execute(ctx context.Context, cfg config, stdout io.Writer, logger *slog.Logger) error {
	provider := newProvider(cfg, logger)
	res, err := limit.NewDispatcher(provider, limit.WithLogger(logger)).Run(ctx, cfg.input)
	if err != nil {
		return err
	}
	return writeResult(stdout, res, cfg.raw)
}
