// Package exec implements [limit.Provider] by running the Bellande_Limit
// companion executable.
//
// The executable receives a passcode followed by the request fields as
// positional arguments, in a fixed order (see [Args]). Exit status 0 means
// success and standard output is the result; any other status is a
// [limit.SubprocessError] carrying standard error.
package exec

import "runtime"

// BaseName is the companion executable's name without platform suffix.
const BaseName = "Bellande_Limit"

// ExecutableName returns the companion executable's file name on the
// current platform.
func ExecutableName() string {
	return executableName(runtime.GOOS)
}

func executableName(goos string) string {
	if goos == "windows" {
		return BaseName + ".exe"
	}
	return BaseName
}
