package app

import (
	"fmt"
	"os/exec"
)

var commandBuilder = exec.Command

// handleOpen hands the fully selected document to the desktop opener. An
// incomplete selection is a no-op; failures only reach the log.
func (app *Application) handleOpen() {
	path, ok := app.state.DocumentPath()
	if !ok {
		return
	}

	cmd, err := app.openDocument(path)
	if err != nil {
		app.logger.Debug().Err(err).Str("path", path).Msg("open failed")
		return
	}
	names := app.state.SelectedNames()
	app.logger.Info().
		Str("path", path).
		Strs("selection", names[:]).
		Strs("command", cmd.Args).
		Msg("document opened")

	go func() {
		if err := cmd.Wait(); err != nil {
			app.logger.Debug().Err(err).Str("path", path).Msg("opener exited with error")
		}
	}()
}

// openDocument starts the opener for path without waiting for it. The caller
// owns the returned command and must Wait on it.
func (app *Application) openDocument(path string) (*exec.Cmd, error) {
	if len(app.openerCmd) == 0 {
		return nil, fmt.Errorf("no opener command available")
	}

	args := make([]string, 0, len(app.openerCmd))
	args = append(args, app.openerCmd[1:]...)
	args = append(args, path)

	cmd := commandBuilder(app.openerCmd[0], args...)
	// The opener must not read from or draw over the UI's terminal.
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detachProcess(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s: %w", app.openerCmd[0], err)
	}
	return cmd, nil
}
