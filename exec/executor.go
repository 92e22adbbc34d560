package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	osexec "os/exec"
	"strings"
	"time"

	"github.com/bellande/limit"
)

// WaitDelay bounds how long Submit waits for the executable's output to be
// closed after the executable exits or the context is done.
const WaitDelay = 2 * time.Second

// Interface compliance check.
var _ limit.Provider = (*Executor)(nil)

// Executor implements [limit.Provider] by running the companion executable
// once per submission and waiting for it to exit.
type Executor struct {
	passcode string
	path     string   // explicit executable; skips the search
	dirs     []string // search directories; nil = directory of the running binary
	logger   *slog.Logger
}

// Option configures an [Executor].
type Option func(*Executor)

// WithPath runs the executable at path instead of searching for it.
func WithPath(path string) Option {
	return func(e *Executor) { e.path = path }
}

// WithSearchDirs sets the directories searched for [ExecutableName], in
// order. Entries may be doublestar glob patterns.
func WithSearchDirs(dirs ...string) Option {
	return func(e *Executor) { e.dirs = dirs }
}

// WithLogger sets the logger used for process lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// New creates an [Executor] that authenticates to the executable with
// passcode.
func New(passcode string, opts ...Option) *Executor {
	e := &Executor{
		passcode: passcode,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Locate returns the path Submit would run.
func (e *Executor) Locate() (string, error) {
	if e.path != "" {
		return ResolvePath(e.path)
	}
	dirs := e.dirs
	if dirs == nil {
		dir, err := BinaryDir()
		if err != nil {
			return "", &limit.ExecutableNotFoundError{Path: ExecutableName(), Err: err}
		}
		dirs = []string{dir}
	}
	return Resolve(ExecutableName(), dirs)
}

// Submit runs the executable with the arguments from [Args] and returns its
// standard output. The child is always waited for, so its pipes and process
// handle are released on every return path. On unix the executable runs in
// its own process group and cancellation kills the whole group.
func (e *Executor) Submit(ctx context.Context, p limit.Params) (limit.Result, error) {
	path, err := e.Locate()
	if err != nil {
		return limit.Result{}, err
	}
	args, err := Args(e.passcode, p)
	if err != nil {
		return limit.Result{}, err
	}

	var stdout, stderr bytes.Buffer
	cmd := osexec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Descendants of the executable may inherit its pipes; Wait gives up on
	// them after WaitDelay once the child is gone or ctx is done.
	cmd.WaitDelay = WaitDelay
	setProcessGroup(cmd)

	e.logger.Debug("starting executable", "path", path, "dimensions", p.Dim(), "obstacles", len(p.Obstacles))
	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return limit.Result{}, fmt.Errorf("exec: %w", ctx.Err())
		}
		return limit.Result{}, &limit.ExecutableNotFoundError{Path: path, Err: err}
	}
	waitErr := cmd.Wait()

	e.logger.Debug("executable exited", "path", path, "exit_code", cmd.ProcessState.ExitCode(),
		"stdout_bytes", stdout.Len(), "stderr_bytes", stderr.Len())

	if ctx.Err() != nil {
		return limit.Result{}, fmt.Errorf("exec: %w", ctx.Err())
	}
	var exitErr *osexec.ExitError
	switch {
	case waitErr == nil:
	case errors.As(waitErr, &exitErr):
		return limit.Result{}, &limit.SubprocessError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   formatStderr(stderr.String()),
		}
	case errors.Is(waitErr, osexec.ErrWaitDelay):
		// The executable exited 0 but left a descendant holding its output.
		e.logger.Warn("executable output left open after exit", "path", path, "wait_delay", WaitDelay)
	default:
		return limit.Result{}, fmt.Errorf("exec: read output: %w", waitErr)
	}

	return limit.Result{Format: limit.FormatText, Data: stdout.Bytes()}, nil
}

func formatStderr(s string) string {
	s = strings.TrimSpace(Sanitize(s))
	tail, truncated := Tail(s, MaxStderrLines, MaxStderrBytes)
	if truncated {
		return "...\n" + tail
	}
	return tail
}
