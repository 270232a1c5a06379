//go:build !windows

package app

import (
	"os"
	"syscall"
)

// contSignals lists the signals that mean the shell resumed us after Ctrl-Z.
func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
