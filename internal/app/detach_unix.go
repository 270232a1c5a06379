//go:build !windows

package app

import (
	"os/exec"
	"syscall"
)

// detachProcess starts cmd in its own session so terminal job control
// signals (Ctrl-C, Ctrl-Z) stay with partscat.
func detachProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
