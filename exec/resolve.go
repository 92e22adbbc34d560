package exec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bellande/limit"
	"github.com/bmatcuk/doublestar/v4"
)

// BinaryDir returns the directory containing the running binary, with
// symlinks resolved.
func BinaryDir() (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("exec: locate running binary: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(self); err == nil {
		self = resolved
	}
	return filepath.Dir(self), nil
}

// Resolve finds the file called name in dirs, trying them in order. An entry
// containing glob metacharacters is expanded with doublestar semantics
// (including **) and its matches are tried in lexical order. Only regular
// files qualify. When nothing qualifies the error is a
// *limit.ExecutableNotFoundError naming the first candidate path.
func Resolve(name string, dirs []string) (string, error) {
	var first string
	for _, pattern := range dirs {
		expanded, err := expandDir(pattern)
		if err != nil {
			return "", err
		}
		for _, dir := range expanded {
			candidate := filepath.Join(dir, name)
			if first == "" {
				first = candidate
			}
			if isRegularFile(candidate) {
				return candidate, nil
			}
		}
	}
	if first == "" {
		first = name
	}
	return "", &limit.ExecutableNotFoundError{Path: first, Err: os.ErrNotExist}
}

// ResolvePath checks an explicitly configured executable path.
func ResolvePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &limit.ExecutableNotFoundError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return "", &limit.ExecutableNotFoundError{Path: path, Err: fmt.Errorf("not a regular file")}
	}
	return path, nil
}

func expandDir(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("exec: search pattern %q: %w", pattern, err)
	}
	return matches, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
