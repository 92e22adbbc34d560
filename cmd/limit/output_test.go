package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bellande/limit"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		res  limit.Result
		raw  bool
		want string
	}{
		{
			name: "json is indented",
			res:  limit.Result{Format: limit.FormatJSON, Data: []byte(`{"a":[1,2]}`)},
			want: "{\n  \"a\": [1, 2]\n}\n",
		},
		{
			name: "raw json is untouched",
			res:  limit.Result{Format: limit.FormatJSON, Data: []byte(`{"a":[1,2]}`)},
			raw:  true,
			want: "{\"a\":[1,2]}\n",
		},
		{
			name: "text keeps trailing newline",
			res:  limit.Result{Format: limit.FormatText, Data: []byte("path found\n")},
			want: "path found\n",
		},
		{
			name: "text gains trailing newline",
			res:  limit.Result{Format: limit.FormatText, Data: []byte("path found")},
			want: "path found\n",
		},
		{
			name: "empty output",
			res:  limit.Result{Format: limit.FormatText},
			want: "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, writeResult(&buf, tt.res, tt.raw))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestAnsiColor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, lipgloss.Color("1"), ansiColor(defaultTheme().Error))
	assert.Equal(t, lipgloss.Color("8"), ansiColor(defaultTheme().Muted))
}

func TestStyles_PrintError(t *testing.T) {
	t.Parallel()

	t.Run("single line", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newStyles(&buf, true).printError(&buf, errors.New("boom"))
		assert.Equal(t, "limit: boom\n", buf.String())
	})

	t.Run("multi line detail", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := &limit.SubprocessError{ExitCode: 3, Stderr: "line one\nline two"}
		newStyles(&buf, true).printError(&buf, err)
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "limit: subprocess error: exit 3: line one", lines[0])
		assert.Equal(t, "line two", lines[1])
	})

	t.Run("trailing newline adds no detail line", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newStyles(&buf, true).printError(&buf, errors.New("boom\n"))
		assert.Equal(t, "limit: boom\n", buf.String())
	})
}
