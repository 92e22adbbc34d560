package limit

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for programmatic checks via errors.Is.
var (
	// ErrParse indicates a textual input field is not the expected JSON.
	ErrParse = errors.New("parse error")

	// ErrDimensionMismatch indicates a vector or obstacle whose length
	// differs from the environment's dimensionality.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidParameter indicates a search parameter outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNetwork indicates a failure on the remote transport.
	ErrNetwork = errors.New("network error")

	// ErrExecutableNotFound indicates the companion executable is missing
	// or cannot be launched.
	ErrExecutableNotFound = errors.New("executable not found")

	// ErrSubprocess indicates the companion executable exited unsuccessfully.
	ErrSubprocess = errors.New("subprocess error")

	// ErrInvalidState indicates an Invocation method was called out of order.
	ErrInvalidState = errors.New("invalid invocation state")
)

// ParseError reports a field whose text could not be parsed.
type ParseError struct {
	Field string
	Msg   string
	Err   error // underlying decoder error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", ErrParse, e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrParse, e.Field, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

// DimensionMismatchError reports a length that differs from D.
// Obstacle is the obstacle index, or -1 when Field names a top-level vector.
type DimensionMismatchError struct {
	Field    string
	Obstacle int
	Got      int
	Want     int
}

func (e *DimensionMismatchError) Error() string {
	if e.Obstacle >= 0 {
		return fmt.Sprintf("%s: obstacle %d: %s has %d dimensions, expected %d",
			ErrDimensionMismatch, e.Obstacle, e.Field, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: %s has %d dimensions, expected %d",
		ErrDimensionMismatch, e.Field, e.Got, e.Want)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// InvalidParameterError reports a scalar parameter outside its domain.
type InvalidParameterError struct {
	Name  string
	Value string
	Msg   string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %s: %s", ErrInvalidParameter, e.Name, e.Value, e.Msg)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// NetworkError reports a remote call that did not yield a JSON response.
// StatusCode is zero when no response was received.
type NetworkError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: %v", ErrNetwork, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: HTTP %d: %v: %s", ErrNetwork, e.StatusCode, e.Err, e.Body)
	default:
		return fmt.Sprintf("%s: HTTP %d: %s", ErrNetwork, e.StatusCode, e.Body)
	}
}

func (e *NetworkError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrNetwork, e.Err}
	}
	return []error{ErrNetwork}
}

// ExecutableNotFoundError reports a companion executable that is absent or
// could not be started.
type ExecutableNotFoundError struct {
	Path string
	Err  error
}

func (e *ExecutableNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrExecutableNotFound, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrExecutableNotFound, e.Path)
}

func (e *ExecutableNotFoundError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrExecutableNotFound, e.Err}
	}
	return []error{ErrExecutableNotFound}
}

// SubprocessError reports a nonzero exit. ExitCode is -1 when the process
// was terminated by a signal.
type SubprocessError struct {
	ExitCode int
	Stderr   string
}

func (e *SubprocessError) Error() string {
	code := strconv.Itoa(e.ExitCode)
	if e.ExitCode < 0 {
		code = "signal"
	}
	if e.Stderr == "" {
		return fmt.Sprintf("%s: exit %s", ErrSubprocess, code)
	}
	return fmt.Sprintf("%s: exit %s: %s", ErrSubprocess, code, e.Stderr)
}

func (e *SubprocessError) Unwrap() error { return ErrSubprocess }
