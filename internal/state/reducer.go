package state

import (
	"github.com/rs/zerolog"
)

// StateReducer applies actions to state
type StateReducer struct {
	logger zerolog.Logger
}

// NewStateReducer creates a new reducer
func NewStateReducer(logger zerolog.Logger) *StateReducer {
	return &StateReducer{logger: logger}
}

// Reduce applies an action to state and returns new state
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== SELECTION =====

	case SelectAction:
		r.selectAndCascade(state, a.Level, a.Index)
		return state, nil

	case CascadeAction:
		if a.ID != state.cascadeID {
			// A newer selection superseded this one before it ran.
			return state, nil
		}
		r.populateBelow(state, a.Level)
		return state, nil

	case NavigateUpAction, NavigateDownAction,
		ScrollPageUpAction, ScrollPageDownAction,
		ScrollToStartAction, ScrollToEndAction:
		level := state.ActiveLevel()
		idx, ok := state.navigationTarget(level, action)
		if !ok {
			return state, nil
		}
		r.selectAndCascade(state, level, idx)
		return state, nil

	// ===== FOCUS =====

	case FocusNextAction:
		state.focusStep(1)
		return state, nil

	case FocusPrevAction:
		state.focusStep(-1)
		return state, nil

	case FocusLevelAction:
		if a.Level.Valid() {
			state.FocusedLevel = a.Level
			state.SearchActive = false
		}
		return state, nil

	// ===== SEARCH =====

	case SearchStartAction:
		state.SearchActive = true
		state.HelpVisible = false
		return state, nil

	case SearchCharAction:
		if !state.SearchActive {
			return state, nil
		}
		state.setSearchQuery(state.SearchQuery + string(a.Char))
		return state, nil

	case SearchBackspaceAction:
		state.setSearchQuery(trimLastRune(state.SearchQuery))
		return state, nil

	case SearchResetQueryAction:
		state.setSearchQuery("")
		return state, nil

	case SearchExitAction:
		state.SearchActive = false
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		for l := LevelMake; l < LevelCount; l++ {
			state.ensureVisible(l)
		}
		return state, nil

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible
		return state, nil

	case HelpHideAction:
		state.HelpVisible = false
		return state, nil

	// ===== APPLICATION =====

	case RefreshAction:
		r.refresh(state)
		return state, nil
	}

	return state, nil
}

// Refresh resets the cascade, reloading makes from the root.
func (r *StateReducer) Refresh(state *AppState) {
	r.refresh(state)
}

// refresh reloads the makes. An unreadable root only leaves the make column
// empty; the reason goes to the debug log.
func (r *StateReducer) refresh(state *AppState) {
	if err := state.LoadRoot(); err != nil {
		r.logger.Debug().Err(err).Str("root", state.RootPath).Msg("catalogue root unavailable")
	}
	r.logger.Info().
		Str("root", state.RootPath).
		Int("makes", len(state.Columns[LevelMake].Items)).
		Msg("catalogue loaded")
}

// selectAndCascade applies a selection now and defers repopulating the next
// column until the current event has been handled. Without a dispatcher the
// cascade runs inline.
func (r *StateReducer) selectAndCascade(state *AppState, level Level, index int) {
	if !state.selectEntry(level, index) {
		return
	}

	if dispatch := state.getDispatch(); dispatch != nil {
		dispatch(CascadeAction{Level: level, ID: state.cascadeID})
		return
	}
	r.populateBelow(state, level)
}

func (r *StateReducer) populateBelow(state *AppState, level Level) {
	if err := state.populateBelow(level); err != nil {
		r.logger.Debug().Err(err).Stringer("level", level+1).Msg("listing unavailable")
	}
}
