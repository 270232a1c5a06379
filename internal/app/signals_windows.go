//go:build windows

package app

import "os"

// Windows has no SIGCONT; suspend is a no-op there.
func contSignals() []os.Signal {
	return nil
}
