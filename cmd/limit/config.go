package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bellande/limit"
)

// Environment variables read by the command.
const (
	envAuthKey    = "BELLANDE_LIMIT_AUTH_KEY"
	envPasscode   = "BELLANDE_LIMIT_PASSCODE"
	envEndpoint   = "BELLANDE_LIMIT_ENDPOINT"
	envExecutable = "BELLANDE_LIMIT_EXECUTABLE"
	envPath       = "BELLANDE_LIMIT_PATH"
)

// options holds parsed command-line flags.
type options struct {
	input         limit.Input
	useExecutable bool
	endpoint      string
	executable    string
	raw           bool
	noColor       bool
	verbose       bool
}

// optionalString is a flag.Value that records whether it was set.
type optionalString struct{ p **string }

func (o optionalString) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return **o.p
}

func (o optionalString) Set(s string) error {
	*o.p = &s
	return nil
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("limit", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.input.Node0, "node0", "", "Starting point coordinates as a JSON list")
	fs.StringVar(&o.input.Node1, "node1", "", "Target point coordinates as a JSON list")
	fs.StringVar(&o.input.Environment, "environment", "", "Environment dimensions as a JSON list")
	fs.StringVar(&o.input.Size, "size", "", "Step sizes for each dimension as a JSON list")
	fs.StringVar(&o.input.Goal, "goal", "", "Goal coordinates as a JSON list")
	fs.Var(optionalString{&o.input.Obstacles}, "obstacles", "Obstacles as a JSON list of {position, dimensions}")
	fs.Float64Var(&o.input.SearchRadius, "search-radius", limit.DefaultSearchRadius, "Search radius for obstacle detection")
	fs.IntVar(&o.input.SamplePoints, "sample-points", limit.DefaultSamplePoints, "Number of sample points for obstacle detection")
	fs.BoolVar(&o.useExecutable, "use-executable", false, "Use the local Bellande_Limit executable instead of the API")
	fs.StringVar(&o.endpoint, "endpoint", "", "API URL (overrides "+envEndpoint+")")
	fs.StringVar(&o.executable, "executable", "", "Executable path (overrides "+envExecutable+")")
	fs.BoolVar(&o.raw, "raw", false, "Print the API response exactly as received")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored diagnostics")
	fs.BoolVar(&o.verbose, "verbose", false, "Log request lifecycle to stderr")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(output, err)
		fs.Usage()
		return options{}, err
	}
	return o, nil
}

// config is the fully resolved configuration for one run.
type config struct {
	input         limit.Input
	useExecutable bool
	endpoint      string   // empty = http.DefaultEndpoint
	authKey       string   // remote only
	passcode      string   // executable only
	executable    string   // explicit executable path
	searchDirs    []string // appended after the binary's directory
	raw           bool
	verbose       bool
}

// resolveConfig merges flags with the environment. Flags win. Secrets are
// only required for the transport that will use them.
func resolveConfig(o options, getenv func(string) string) (config, error) {
	cfg := config{
		input:         o.input,
		useExecutable: o.useExecutable,
		endpoint:      firstNonEmpty(o.endpoint, getenv(envEndpoint)),
		executable:    firstNonEmpty(o.executable, getenv(envExecutable)),
		raw:           o.raw,
		verbose:       o.verbose,
	}
	for _, dir := range filepath.SplitList(getenv(envPath)) {
		if dir != "" {
			cfg.searchDirs = append(cfg.searchDirs, dir)
		}
	}

	if cfg.useExecutable {
		cfg.passcode = getenv(envPasscode)
		if cfg.passcode == "" {
			return config{}, fmt.Errorf("%s not set (required with -use-executable)", envPasscode)
		}
		return cfg, nil
	}
	cfg.authKey = getenv(envAuthKey)
	if cfg.authKey == "" {
		return config{}, fmt.Errorf("%s not set (required for the API; use -use-executable for the local executable)", envAuthKey)
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
