package state

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNavigateDownSelectsAndCascades(t *testing.T) {
	t.Parallel()

	state, reducer := newLoadedState(t, fordCatalogue(t))

	if _, err := reducer.Reduce(state, NavigateDownAction{}); err != nil {
		t.Fatalf("navigate down: %v", err)
	}
	if entry := state.Columns[LevelMake].SelectedEntry(); entry == nil || entry.Name != "Ford" {
		t.Fatalf("expected Ford selected, got %v", entry)
	}
	if got := itemNames(state.Columns[LevelModel].Items); !reflect.DeepEqual(got, []string{"F150", "Focus"}) {
		t.Fatalf("expected Ford models, got %v", got)
	}

	reducer.Reduce(state, NavigateDownAction{})
	if entry := state.Columns[LevelMake].SelectedEntry(); entry == nil || entry.Name != "Toyota" {
		t.Fatalf("expected Toyota selected, got %v", entry)
	}
	if got := itemNames(state.Columns[LevelModel].Items); !reflect.DeepEqual(got, []string{"Corolla"}) {
		t.Fatalf("expected Toyota models, got %v", got)
	}
}

func TestNavigateAtBoundsDoesNotRecascade(t *testing.T) {
	t.Parallel()

	state, reducer := newLoadedState(t, fordCatalogue(t))
	reducer.Reduce(state, ScrollToEndAction{})
	id := state.cascadeID

	reducer.Reduce(state, NavigateDownAction{})
	if state.cascadeID != id {
		t.Fatalf("expected no cascade when selection does not move")
	}

	reducer.Reduce(state, ScrollToStartAction{})
	reducer.Reduce(state, NavigateUpAction{})
	if state.Columns[LevelMake].Selected != 0 {
		t.Fatalf("expected selection to stay at 0, got %d", state.Columns[LevelMake].Selected)
	}
}

func TestNavigateUpWithoutSelectionPicksLast(t *testing.T) {
	t.Parallel()

	state, reducer := newLoadedState(t, fordCatalogue(t))
	reducer.Reduce(state, NavigateUpAction{})
	if entry := state.Columns[LevelMake].SelectedEntry(); entry == nil || entry.Name != "Toyota" {
		t.Fatalf("expected last make selected, got %v", entry)
	}
}

func TestPageNavigationKeepsSelectionVisible(t *testing.T) {
	t.Parallel()

	var paths []string
	for i := 0; i < 50; i++ {
		paths = append(paths, fmt.Sprintf("Make%02d/", i))
	}
	state, reducer := newLoadedState(t, buildCatalogue(t, paths...))
	state.ScreenHeight = 14 // ten list rows

	reducer.Reduce(state, ScrollPageDownAction{})
	col := state.Columns[LevelMake]
	if col.Selected != 10 {
		t.Fatalf("expected selection 10 after page down, got %d", col.Selected)
	}
	if col.Selected < col.Scroll || col.Selected >= col.Scroll+state.ListHeight() {
		t.Fatalf("selection %d outside viewport starting at %d", col.Selected, col.Scroll)
	}

	reducer.Reduce(state, ScrollToEndAction{})
	col = state.Columns[LevelMake]
	if col.Selected != 49 || col.Scroll != 40 {
		t.Fatalf("expected selection 49 scroll 40, got %d/%d", col.Selected, col.Scroll)
	}

	reducer.Reduce(state, ScrollPageUpAction{})
	if got := state.Columns[LevelMake].Selected; got != 39 {
		t.Fatalf("expected selection 39 after page up, got %d", got)
	}
}

func TestDeferredCascadeRunsOnlyForLatestSelection(t *testing.T) {
	t.Parallel()

	state, reducer := newLoadedState(t, fordCatalogue(t))
	var queued []Action
	state.SetDispatch(func(a Action) {
		queued = append(queued, a)
	})

	reducer.Reduce(state, NavigateDownAction{}) // Ford
	reducer.Reduce(state, NavigateDownAction{}) // Toyota

	if len(queued) != 2 {
		t.Fatalf("expected two queued cascades, got %d", len(queued))
	}
	if n := len(state.Columns[LevelModel].Items); n != 0 {
		t.Fatalf("expected models to wait for the cascade, got %d", n)
	}

	// Drain the queue in arrival order, as the application loop does.
	for _, action := range queued {
		before := len(state.Columns[LevelModel].Items)
		reducer.Reduce(state, action)
		if action.(CascadeAction).ID != state.cascadeID && len(state.Columns[LevelModel].Items) != before {
			t.Fatalf("stale cascade must not touch the model column")
		}
	}

	if got := itemNames(state.Columns[LevelModel].Items); !reflect.DeepEqual(got, []string{"Corolla"}) {
		t.Fatalf("expected models for the latest selection, got %v", got)
	}
}

func TestFocusMovesOnlyIntoPopulatedColumns(t *testing.T) {
	t.Parallel()

	state, reducer := newLoadedState(t, fordCatalogue(t))

	reducer.Reduce(state, FocusNextAction{})
	if state.FocusedLevel != LevelMake {
		t.Fatalf("expected focus to stay on make when models are empty")
	}

	selectByName(t, reducer, state, LevelMake, "Ford")
	reducer.Reduce(state, FocusNextAction{})
	if state.FocusedLevel != LevelModel {
		t.Fatalf("expected focus on model, got %s", state.FocusedLevel)
	}

	reducer.Reduce(state, FocusPrevAction{})
	reducer.Reduce(state, FocusPrevAction{})
	if state.FocusedLevel != LevelMake {
		t.Fatalf("expected focus back on make, got %s", state.FocusedLevel)
	}

	reducer.Reduce(state, SearchStartAction{})
	reducer.Reduce(state, FocusLevelAction{Level: LevelYear})
	if state.FocusedLevel != LevelYear || state.SearchActive {
		t.Fatalf("expected explicit focus to leave search, got %s search=%v", state.FocusedLevel, state.SearchActive)
	}
}

func TestResizeClampsScroll(t *testing.T) {
	t.Parallel()

	var paths []string
	for i := 0; i < 30; i++ {
		paths = append(paths, fmt.Sprintf("Make%02d/", i))
	}
	state, reducer := newLoadedState(t, buildCatalogue(t, paths...))
	state.ScreenHeight = 10
	reducer.Reduce(state, ScrollToEndAction{})

	reducer.Reduce(state, ResizeAction{Width: 100, Height: 60})
	if state.Columns[LevelMake].Scroll != 0 {
		t.Fatalf("expected scroll reset when everything fits, got %d", state.Columns[LevelMake].Scroll)
	}
}

func TestRefreshResetsCascade(t *testing.T) {
	t.Parallel()

	root := fordCatalogue(t)
	state, reducer := newLoadedState(t, root)
	selectByName(t, reducer, state, LevelMake, "Ford")
	selectByName(t, reducer, state, LevelModel, "F150")
	selectByName(t, reducer, state, LevelYear, "2020")
	reducer.Reduce(state, SearchStartAction{})
	reducer.Reduce(state, SearchCharAction{Char: 'e'})

	if err := os.Mkdir(filepath.Join(root, "Audi"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if _, err := reducer.Reduce(state, RefreshAction{}); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if got := itemNames(state.Columns[LevelMake].Items); !reflect.DeepEqual(got, []string{"Audi", "Ford", "Toyota"}) {
		t.Fatalf("expected reloaded makes, got %v", got)
	}
	if state.Columns[LevelMake].Selected != -1 {
		t.Fatalf("expected make selection cleared")
	}
	for l := LevelModel; l < LevelCount; l++ {
		if len(state.Columns[l].Items) != 0 {
			t.Fatalf("expected %s column cleared", l)
		}
	}
	if state.Documents != nil || state.SearchQuery != "" || state.SearchActive {
		t.Fatalf("expected cache and search cleared")
	}
}

func TestRefreshTreatsUnreadableRootAsEmpty(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "catalogue.pdf")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	for _, root := range []string{file, filepath.Join(file, "sub")} {
		state, reducer := newLoadedState(t, root)
		if n := len(state.Columns[LevelMake].Items); n != 0 {
			t.Fatalf("%s: expected no makes, got %d", root, n)
		}

		// The empty catalogue stays usable.
		reducer.Reduce(state, NavigateDownAction{})
		reducer.Reduce(state, RefreshAction{})
		if state.Columns[LevelMake].Selected != -1 {
			t.Fatalf("%s: expected nothing selectable", root)
		}
		if got := state.SelectionPath(); got != root {
			t.Fatalf("%s: expected bare root in selection path, got %q", root, got)
		}
	}
}

func TestRefreshAfterRootBecomesUnreadable(t *testing.T) {
	t.Parallel()

	root := fordCatalogue(t)
	state, reducer := newLoadedState(t, root)
	selectByName(t, reducer, state, LevelMake, "Ford")

	if err := os.RemoveAll(root); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reducer.Reduce(state, RefreshAction{})
	for l := LevelMake; l < LevelCount; l++ {
		if n := len(state.Columns[l].Items); n != 0 {
			t.Fatalf("expected %s column empty, got %d items", l, n)
		}
	}
}
