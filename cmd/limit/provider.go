package main

import (
	"log/slog"

	"github.com/bellande/limit"
	limitexec "github.com/bellande/limit/exec"
	"github.com/bellande/limit/http"
)

// newProvider selects the transport. The choice is made once here; the
// dispatcher only sees a limit.Provider.
func newProvider(cfg config, logger *slog.Logger) limit.Provider {
	if !cfg.useExecutable {
		var opts []http.Option
		if cfg.endpoint != "" {
			opts = append(opts, http.WithEndpoint(cfg.endpoint))
		}
		return http.New(cfg.authKey, opts...)
	}

	opts := []limitexec.Option{limitexec.WithLogger(logger)}
	if cfg.executable != "" {
		opts = append(opts, limitexec.WithPath(cfg.executable))
	} else {
		var dirs []string
		if dir, err := limitexec.BinaryDir(); err == nil {
			dirs = append(dirs, dir)
		} else {
			logger.Warn("cannot locate running binary", "error", err)
		}
		dirs = append(dirs, cfg.searchDirs...)
		opts = append(opts, limitexec.WithSearchDirs(dirs...))
	}
	return limitexec.New(cfg.passcode, opts...)
}
