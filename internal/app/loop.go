package app

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/partscat/internal/state"
	renderui "github.com/kk-code-lab/partscat/internal/ui/render"
)

const doubleClickThreshold = 300 * time.Millisecond

// Run drives the UI until the user quits. Terminal events, queued actions
// and SIGCONT are handled one at a time, then every action queued as a
// side effect is drained before the next frame is drawn.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state)
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state)
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	app.logger.Debug().Msg("quit")
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps primary-button presses onto toolbar buttons, column
// titles and column rows. Holding the button down counts as one click.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state == nil {
		return
	}
	if ev.Buttons()&tcell.Button1 == 0 {
		app.mouseDown = false
		return
	}
	if app.mouseDown {
		return
	}
	app.mouseDown = true

	if app.state.HelpVisible {
		app.actionCh <- statepkg.HelpHideAction{}
		return
	}

	layout, ok := app.renderer.LastLayout()
	if !ok {
		layout = renderui.ComputeLayout(app.state.ScreenWidth, app.state.ScreenHeight)
	}

	x, y := ev.Position()
	if y == 0 {
		app.handleToolbarClick(layout, x)
		return
	}

	level, ok := layout.ColumnAt(x)
	if !ok {
		return
	}
	// Clicking the document column while searching keeps the search field.
	keepSearch := app.state.SearchActive && level == statepkg.LevelDocument

	if y == layout.TitleRow {
		if !keepSearch {
			app.actionCh <- statepkg.FocusLevelAction{Level: level}
		}
		return
	}

	row, ok := layout.ListRow(y)
	if !ok {
		return
	}
	col := app.state.Column(level)
	idx := col.Scroll + row
	if idx >= len(col.Items) {
		return
	}

	clickKey := fmt.Sprintf("%s-%d", level, idx)
	doubleClick := app.lastClickKey == clickKey && time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickKey = clickKey
	app.lastClickTime = time.Now()

	if !keepSearch {
		app.actionCh <- statepkg.FocusLevelAction{Level: level}
	}
	// Reselecting the current entry still clears and reloads the columns below.
	app.actionCh <- statepkg.SelectAction{Level: level, Index: idx}
	if doubleClick && level == statepkg.LevelDocument {
		app.actionCh <- statepkg.OpenAction{}
	}
}

func (app *Application) handleToolbarClick(layout renderui.Layout, x int) {
	switch {
	case layout.OpenButton.Contains(x):
		app.actionCh <- statepkg.OpenAction{}
	case layout.RefreshButton.Contains(x):
		app.actionCh <- statepkg.RefreshAction{}
	case layout.SearchLabel.Contains(x), layout.SearchField.Contains(x):
		app.actionCh <- statepkg.SearchStartAction{}
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.OpenAction:
		app.handleOpen()
		return false
	}

	app.reducer.Reduce(app.state, action)
	return true
}
