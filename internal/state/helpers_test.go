package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// buildCatalogue creates every path under root; names ending in "/" are
// directories, everything else is an empty file.
func buildCatalogue(t *testing.T, paths ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("failed to create %s: %v", p, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", p, err)
		}
		if err := os.WriteFile(full, []byte(p), 0o644); err != nil {
			t.Fatalf("failed to create %s: %v", p, err)
		}
	}
	return root
}

func fordCatalogue(t *testing.T) string {
	t.Helper()
	return buildCatalogue(t,
		"Ford/F150/2020/engine.pdf",
		"Ford/F150/2020/brakes.pdf",
		"Ford/F150/2020/notes.txt",
		"Ford/F150/2021/",
		"Ford/Focus/2018/clutch.pdf",
		"Toyota/Corolla/2019/",
	)
}

func newLoadedState(t *testing.T, root string) (*AppState, *StateReducer) {
	t.Helper()
	state := NewAppState(root, ".pdf", false)
	state.ScreenWidth = 120
	state.ScreenHeight = 24
	reducer := NewStateReducer(zerolog.Nop())
	if _, err := reducer.Reduce(state, RefreshAction{}); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	return state, reducer
}

func selectByName(t *testing.T, reducer *StateReducer, state *AppState, level Level, name string) {
	t.Helper()
	col := state.Column(level)
	for idx, entry := range col.Items {
		if entry.Name == name {
			if _, err := reducer.Reduce(state, SelectAction{Level: level, Index: idx}); err != nil {
				t.Fatalf("select %s failed: %v", name, err)
			}
			return
		}
	}
	t.Fatalf("%s not listed at %s level: %v", name, level, itemNames(col.Items))
}

func itemNames(entries []FileEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
