package main

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bellande/limit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		o, err := parseFlags(nil, io.Discard)
		require.NoError(t, err)
		assert.Nil(t, o.input.Obstacles)
		assert.Equal(t, limit.DefaultSearchRadius, o.input.SearchRadius)
		assert.Equal(t, limit.DefaultSamplePoints, o.input.SamplePoints)
		assert.False(t, o.useExecutable)
	})

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()
		o, err := parseFlags([]string{
			"-node0", "[0]", "-node1", "[1]", "-environment", "[10]", "-size", "[1]", "-goal", "[5]",
			"-obstacles", "[]", "-search-radius", "2.5", "-sample-points", "7",
			"-use-executable", "-executable", "/opt/bin/x", "-endpoint", "http://e",
			"-raw", "-no-color", "-verbose",
		}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "[0]", o.input.Node0)
		assert.Equal(t, "[10]", o.input.Environment)
		require.NotNil(t, o.input.Obstacles)
		assert.Equal(t, "[]", *o.input.Obstacles)
		assert.Equal(t, 2.5, o.input.SearchRadius)
		assert.Equal(t, 7, o.input.SamplePoints)
		assert.True(t, o.useExecutable)
		assert.Equal(t, "/opt/bin/x", o.executable)
		assert.Equal(t, "http://e", o.endpoint)
		assert.True(t, o.raw)
		assert.True(t, o.noColor)
		assert.True(t, o.verbose)
	})

	t.Run("empty obstacles flag is still set", func(t *testing.T) {
		t.Parallel()
		o, err := parseFlags([]string{"-obstacles", ""}, io.Discard)
		require.NoError(t, err)
		require.NotNil(t, o.input.Obstacles)
		assert.Equal(t, "", *o.input.Obstacles)
	})

	t.Run("bad number", func(t *testing.T) {
		t.Parallel()
		_, err := parseFlags([]string{"-sample-points", "many"}, io.Discard)
		assert.Error(t, err)
	})
}

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	t.Run("remote requires auth key", func(t *testing.T) {
		t.Parallel()
		_, err := resolveConfig(options{}, envFunc(map[string]string{envPasscode: "p"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), envAuthKey)
	})

	t.Run("executable requires passcode", func(t *testing.T) {
		t.Parallel()
		_, err := resolveConfig(options{useExecutable: true}, envFunc(map[string]string{envAuthKey: "k"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), envPasscode)
	})

	t.Run("secrets are scoped to transport", func(t *testing.T) {
		t.Parallel()
		env := envFunc(map[string]string{envAuthKey: "k", envPasscode: "p"})

		remote, err := resolveConfig(options{}, env)
		require.NoError(t, err)
		assert.Equal(t, "k", remote.authKey)
		assert.Empty(t, remote.passcode)

		local, err := resolveConfig(options{useExecutable: true}, env)
		require.NoError(t, err)
		assert.Equal(t, "p", local.passcode)
		assert.Empty(t, local.authKey)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Parallel()
		env := envFunc(map[string]string{
			envAuthKey:    "k",
			envEndpoint:   "http://env",
			envExecutable: "/env/exe",
		})
		cfg, err := resolveConfig(options{endpoint: "http://flag", executable: "/flag/exe"}, env)
		require.NoError(t, err)
		assert.Equal(t, "http://flag", cfg.endpoint)
		assert.Equal(t, "/flag/exe", cfg.executable)

		cfg, err = resolveConfig(options{}, env)
		require.NoError(t, err)
		assert.Equal(t, "http://env", cfg.endpoint)
		assert.Equal(t, "/env/exe", cfg.executable)
	})

	t.Run("search path list", func(t *testing.T) {
		t.Parallel()
		list := strings.Join([]string{"/a", "", "/b/**"}, string(filepath.ListSeparator))
		cfg, err := resolveConfig(options{}, envFunc(map[string]string{envAuthKey: "k", envPath: list}))
		require.NoError(t, err)
		assert.Equal(t, []string{"/a", "/b/**"}, cfg.searchDirs)
	})
}
