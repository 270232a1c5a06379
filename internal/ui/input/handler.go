package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/partscat/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	inSearch := ih.state != nil && ih.state.SearchActive
	helpVisible := ih.state != nil && ih.state.HelpVisible

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case tcell.KeyCtrlZ:
		ih.actionChan <- statepkg.SuspendAction{}
		return true
	}

	if helpVisible {
		switch ev.Key() {
		case tcell.KeyEscape:
			ih.actionChan <- statepkg.HelpHideAction{}
		case tcell.KeyRune:
			r := ev.Rune()
			if r == '?' || r == 'q' || r == 'Q' {
				ih.actionChan <- statepkg.HelpHideAction{}
			}
		}
		return true
	}

	if inSearch {
		return ih.processSearchKey(ev)
	}
	return ih.processNormalKey(ev)
}

// processSearchKey handles keys while the search field has focus: runes
// extend the query and navigation acts on the document column.
func (ih *InputHandler) processSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if ih.state.SearchQuery != "" {
			ih.actionChan <- statepkg.SearchResetQueryAction{}
		} else {
			ih.actionChan <- statepkg.SearchExitAction{}
		}
	case tcell.KeyEnter:
		ih.actionChan <- statepkg.OpenAction{}
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyLeft, tcell.KeyTab, tcell.KeyBacktab:
		ih.actionChan <- statepkg.SearchExitAction{}
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		ih.actionChan <- statepkg.SearchBackspaceAction{}
	case tcell.KeyCtrlU:
		ih.actionChan <- statepkg.SearchResetQueryAction{}
	case tcell.KeyF5:
		ih.actionChan <- statepkg.RefreshAction{}
	case tcell.KeyRune:
		ih.actionChan <- statepkg.SearchCharAction{Char: ev.Rune()}
	}
	return true
}

func (ih *InputHandler) processNormalKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
	case tcell.KeyLeft, tcell.KeyBacktab:
		ih.actionChan <- statepkg.FocusPrevAction{}
	case tcell.KeyRight, tcell.KeyTab:
		ih.actionChan <- statepkg.FocusNextAction{}
	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.ScrollPageUpAction{}
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.ScrollPageDownAction{}
	case tcell.KeyHome:
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case tcell.KeyEnd:
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case tcell.KeyEnter:
		ih.emitEnter()
	case tcell.KeyF5:
		ih.actionChan <- statepkg.RefreshAction{}
	case tcell.KeyRune:
		return ih.processNormalRune(ev.Rune())
	}
	return true
}

func (ih *InputHandler) processNormalRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'k':
		ih.actionChan <- statepkg.NavigateUpAction{}
	case 'j':
		ih.actionChan <- statepkg.NavigateDownAction{}
	case 'h':
		ih.actionChan <- statepkg.FocusPrevAction{}
	case 'l':
		ih.actionChan <- statepkg.FocusNextAction{}
	case 'g':
		ih.actionChan <- statepkg.ScrollToStartAction{}
	case 'G':
		ih.actionChan <- statepkg.ScrollToEndAction{}
	case 'o':
		ih.emitEnter()
	case '/':
		ih.actionChan <- statepkg.SearchStartAction{}
	case 'r', 'R':
		ih.actionChan <- statepkg.RefreshAction{}
	case '?':
		ih.actionChan <- statepkg.HelpToggleAction{}
	}
	return true
}

// emitEnter opens the selected document from the document column and
// otherwise descends into the next column.
func (ih *InputHandler) emitEnter() {
	if ih.state != nil && ih.state.FocusedLevel == statepkg.LevelDocument {
		ih.actionChan <- statepkg.OpenAction{}
		return
	}
	ih.actionChan <- statepkg.FocusNextAction{}
}
