package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/partscat/internal/config"
	statepkg "github.com/kk-code-lab/partscat/internal/state"
	"github.com/rs/zerolog"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(w, h)
	return scr
}

func newCatalogueState(t *testing.T, w, h int) (*statepkg.AppState, *statepkg.StateReducer) {
	t.Helper()
	root := t.TempDir()
	for _, p := range []string{
		"Ford/F150/2020/engine.pdf",
		"Ford/F150/2020/brakes.pdf",
		"Toyota/Corolla/2019/wiring.pdf",
	} {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	state := statepkg.NewAppState(root, ".pdf", false)
	reducer := statepkg.NewStateReducer(zerolog.Nop())
	reducer.Reduce(state, statepkg.ResizeAction{Width: w, Height: h})
	reducer.Reduce(state, statepkg.RefreshAction{})
	return state, reducer
}

func rowText(scr tcell.SimulationScreen, y int) string {
	cells, w, _ := scr.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(runes))
	}
	return b.String()
}

func spanText(scr tcell.SimulationScreen, y int, span Span) string {
	row := []rune(rowText(scr, y))
	if span.End > len(row) {
		span.End = len(row)
	}
	return strings.TrimSpace(string(row[span.Start:span.End]))
}

func TestComputeLayoutSpansDoNotOverlap(t *testing.T) {
	for _, size := range [][2]int{{80, 24}, {120, 40}, {40, 10}} {
		l := ComputeLayout(size[0], size[1])

		if l.OpenButton.End > l.RefreshButton.Start {
			t.Fatalf("%v: open button overlaps refresh", size)
		}
		if l.SearchLabel.End != l.SearchField.Start || l.SearchField.End > size[0] {
			t.Fatalf("%v: search field misplaced: %+v %+v", size, l.SearchLabel, l.SearchField)
		}
		if l.Title.End > l.SearchLabel.Start {
			t.Fatalf("%v: title overlaps search label", size)
		}
		for i := 1; i < len(l.Columns); i++ {
			if l.Columns[i].Start <= l.Columns[i-1].End-1 {
				t.Fatalf("%v: column %d overlaps column %d", size, i, i-1)
			}
		}
		if l.Columns[len(l.Columns)-1].End != size[0] {
			t.Fatalf("%v: last column should reach the right edge", size)
		}
		if l.ListHeight != size[1]-4 {
			t.Fatalf("%v: unexpected list height %d", size, l.ListHeight)
		}
	}
}

func TestLayoutColumnAtAndListRow(t *testing.T) {
	l := ComputeLayout(83, 20)

	level, ok := l.ColumnAt(l.Columns[statepkg.LevelYear].Start)
	if !ok || level != statepkg.LevelYear {
		t.Fatalf("expected year column, got %v %v", level, ok)
	}
	if _, ok := l.ColumnAt(l.Columns[statepkg.LevelMake].End); ok {
		t.Fatalf("separator must not map to a column")
	}

	if row, ok := l.ListRow(l.ListTop + 3); !ok || row != 3 {
		t.Fatalf("expected row 3, got %d %v", row, ok)
	}
	if _, ok := l.ListRow(l.TitleRow); ok {
		t.Fatalf("title row is not a list row")
	}
	if _, ok := l.ListRow(l.StatusRow); ok {
		t.Fatalf("status row is not a list row")
	}
}

func TestRenderDrawsToolbarAndColumns(t *testing.T) {
	// Wide enough for the temp-dir selection path in the status line.
	scr := newTestScreen(t, 160, 20)
	state, reducer := newCatalogueState(t, 160, 20)
	reducer.Reduce(state, statepkg.SelectAction{Level: statepkg.LevelMake, Index: 0})

	renderer := NewRenderer(scr)
	renderer.Render(state)
	layout, ok := renderer.LastLayout()
	if !ok {
		t.Fatalf("expected layout after render")
	}

	toolbar := rowText(scr, toolbarRow)
	for _, want := range []string{"[Open]", "[Refresh]", config.DefaultTitle, "Search:"} {
		if !strings.Contains(toolbar, want) {
			t.Fatalf("toolbar %q missing %q", toolbar, want)
		}
	}

	for level, title := range config.DefaultColumns {
		if got := spanText(scr, layout.TitleRow, layout.Columns[level]); got != title {
			t.Fatalf("column %d title = %q, want %q", level, got, title)
		}
	}

	if got := spanText(scr, layout.ListTop, layout.Columns[statepkg.LevelMake]); got != "Ford" {
		t.Fatalf("expected Ford in first row, got %q", got)
	}
	if got := spanText(scr, layout.ListTop+1, layout.Columns[statepkg.LevelMake]); got != "Toyota" {
		t.Fatalf("expected Toyota in second row, got %q", got)
	}
	if got := spanText(scr, layout.ListTop, layout.Columns[statepkg.LevelModel]); got != "F150" {
		t.Fatalf("expected F150 model, got %q", got)
	}
	if got := spanText(scr, layout.ListTop, layout.Columns[statepkg.LevelYear]); got != "" {
		t.Fatalf("expected empty year column until a model is selected, got %q", got)
	}

	status := rowText(scr, layout.StatusRow)
	if !strings.Contains(status, filepath.Join(state.RootPath, "Ford")) {
		t.Fatalf("status %q should show the selection path", status)
	}
}

func TestRenderSearchFieldAndNoMatches(t *testing.T) {
	scr := newTestScreen(t, 100, 20)
	state, reducer := newCatalogueState(t, 100, 20)
	for level := statepkg.LevelMake; level < statepkg.LevelDocument; level++ {
		reducer.Reduce(state, statepkg.SelectAction{Level: level, Index: 0})
	}
	reducer.Reduce(state, statepkg.SearchStartAction{})
	for _, r := range "zzz" {
		reducer.Reduce(state, statepkg.SearchCharAction{Char: r})
	}

	renderer := NewRenderer(scr)
	renderer.Render(state)
	layout, _ := renderer.LastLayout()

	if got := spanText(scr, toolbarRow, layout.SearchField); got != "zzz" {
		t.Fatalf("expected query in search field, got %q", got)
	}
	if got := spanText(scr, layout.ListTop, layout.Columns[statepkg.LevelDocument]); got != "No matches" {
		t.Fatalf("expected placeholder, got %q", got)
	}
	if status := rowText(scr, layout.StatusRow); !strings.Contains(status, "0/2") {
		t.Fatalf("expected match counter in status, got %q", status)
	}
}

func TestRenderUsesConfiguredLabels(t *testing.T) {
	scr := newTestScreen(t, 100, 20)
	state, _ := newCatalogueState(t, 100, 20)

	renderer := NewRenderer(scr)
	renderer.SetLabels("Tractor manuals", []string{"BRAND", "", "SEASON", "SECTION"})
	renderer.Render(state)
	layout, _ := renderer.LastLayout()

	if !strings.Contains(rowText(scr, toolbarRow), "Tractor manuals") {
		t.Fatalf("expected configured title")
	}
	want := []string{"BRAND", "MODEL", "SEASON", "SECTION"}
	for level, title := range want {
		if got := spanText(scr, layout.TitleRow, layout.Columns[level]); got != title {
			t.Fatalf("column %d title = %q, want %q", level, got, title)
		}
	}
}

func TestRenderSanitizesEntryNames(t *testing.T) {
	scr := newTestScreen(t, 100, 12)
	state := statepkg.NewAppState("/catalogue", ".pdf", false)
	state.Columns[statepkg.LevelMake].Items = []statepkg.FileEntry{
		{Name: "bad\x1b[2Jname", FullPath: "/catalogue/bad", IsDir: true},
	}

	renderer := NewRenderer(scr)
	renderer.Render(state)
	layout, _ := renderer.LastLayout()

	got := spanText(scr, layout.ListTop, layout.Columns[statepkg.LevelMake])
	if strings.ContainsRune(got, '\x1b') || !strings.HasPrefix(got, "bad?") {
		t.Fatalf("expected escape replaced, got %q", got)
	}
}

func TestRenderHelpOverlay(t *testing.T) {
	scr := newTestScreen(t, 80, 30)
	state, reducer := newCatalogueState(t, 80, 30)
	reducer.Reduce(state, statepkg.HelpToggleAction{})

	renderer := NewRenderer(scr)
	renderer.Render(state)

	if !strings.Contains(rowText(scr, 0), "Help") {
		t.Fatalf("expected help title")
	}
	found := false
	for y := 0; y < 30; y++ {
		if strings.Contains(rowText(scr, y), "Refresh the catalogue") {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected refresh entry in help overlay")
	}
}

func TestFooterHintsFollowFocus(t *testing.T) {
	state := statepkg.NewAppState("/catalogue", ".pdf", false)
	if got := buildFooterHelpText(state); !strings.Contains(got, "↵: next column") {
		t.Fatalf("expected next-column hint, got %q", got)
	}

	state.FocusedLevel = statepkg.LevelDocument
	if got := buildFooterHelpText(state); !strings.Contains(got, "↵: open") {
		t.Fatalf("expected open hint, got %q", got)
	}

	state.SearchActive = true
	state.SearchQuery = "eng"
	if got := buildFooterHelpText(state); !strings.Contains(got, "Esc: clear") {
		t.Fatalf("expected clear hint while searching, got %q", got)
	}
}

func TestTailToWidthKeepsEnd(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"engine", 10, "engine"},
		{"engine", 3, "ine"},
		{"engine", 0, ""},
		{"日本語", 4, "本語"},
	}
	for _, tc := range cases {
		if got := tailToWidth(tc.in, tc.width); got != tc.want {
			t.Fatalf("tailToWidth(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
