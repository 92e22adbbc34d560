//go:build !unix

package exec

import osexec "os/exec"

// setProcessGroup is a no-op; cancellation kills the executable only and
// WaitDelay releases any pipes its children still hold.
func setProcessGroup(cmd *osexec.Cmd) {}
