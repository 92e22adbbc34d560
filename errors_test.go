package limit_test

import (
	"errors"
	"io"
	"testing"

	"github.com/bellande/limit"
	"github.com/stretchr/testify/assert"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"parse",
			&limit.ParseError{Field: "node0", Msg: "required"},
			"parse error: node0: required",
		},
		{
			"parse with cause",
			&limit.ParseError{Field: "goal", Msg: "expected a JSON array of numbers", Err: io.ErrUnexpectedEOF},
			"parse error: goal: expected a JSON array of numbers: unexpected EOF",
		},
		{
			"vector mismatch",
			&limit.DimensionMismatchError{Field: "node0", Obstacle: -1, Got: 2, Want: 3},
			"dimension mismatch: node0 has 2 dimensions, expected 3",
		},
		{
			"obstacle mismatch",
			&limit.DimensionMismatchError{Field: "dimensions", Obstacle: 4, Got: 2, Want: 3},
			"dimension mismatch: obstacle 4: dimensions has 2 dimensions, expected 3",
		},
		{
			"invalid parameter",
			&limit.InvalidParameterError{Name: "search_radius", Value: "-1", Msg: "must be a finite number greater than 0"},
			"invalid parameter: search_radius = -1: must be a finite number greater than 0",
		},
		{
			"network transport",
			&limit.NetworkError{Err: io.EOF},
			"network error: EOF",
		},
		{
			"network status",
			&limit.NetworkError{StatusCode: 500, Body: "boom"},
			"network error: HTTP 500: boom",
		},
		{
			"executable not found",
			&limit.ExecutableNotFoundError{Path: "/opt/Bellande_Limit"},
			"executable not found: /opt/Bellande_Limit",
		},
		{
			"subprocess",
			&limit.SubprocessError{ExitCode: 2, Stderr: "bad passcode"},
			"subprocess error: exit 2: bad passcode",
		},
		{
			"subprocess signal",
			&limit.SubprocessError{ExitCode: -1},
			"subprocess error: exit signal",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrors_Is(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, &limit.ParseError{}, limit.ErrParse)
	assert.ErrorIs(t, &limit.DimensionMismatchError{}, limit.ErrDimensionMismatch)
	assert.ErrorIs(t, &limit.InvalidParameterError{}, limit.ErrInvalidParameter)
	assert.ErrorIs(t, &limit.NetworkError{}, limit.ErrNetwork)
	assert.ErrorIs(t, &limit.ExecutableNotFoundError{}, limit.ErrExecutableNotFound)
	assert.ErrorIs(t, &limit.SubprocessError{}, limit.ErrSubprocess)

	cause := errors.New("connection reset")
	err := &limit.NetworkError{Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, limit.ErrSubprocess))
}
