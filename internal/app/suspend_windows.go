//go:build windows

package app

// Windows has no SIGTSTP; Ctrl-Z leaves the UI running.
func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
