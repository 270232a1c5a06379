package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== SELECTION ACTIONS =====

// SelectAction chooses Index in the column at Level (mouse clicks).
type SelectAction struct {
	Level Level
	Index int
}

// CascadeAction repopulates the column below Level once the selection that
// queued it has been applied. Stale cascades (ID no longer current) are dropped.
type CascadeAction struct {
	Level Level
	ID    int
}

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type ScrollPageUpAction struct{}
type ScrollPageDownAction struct{}
type ScrollToStartAction struct{}
type ScrollToEndAction struct{}

// ===== FOCUS ACTIONS =====

type FocusNextAction struct{}
type FocusPrevAction struct{}
type FocusLevelAction struct {
	Level Level
}

// ===== SEARCH ACTIONS =====

type SearchStartAction struct{}
type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchResetQueryAction struct{}
type SearchExitAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type OpenAction struct{}    // open the selected document with the OS handler
type RefreshAction struct{} // reload makes and clear everything below
type QuitAction struct{}
type SuspendAction struct{}
