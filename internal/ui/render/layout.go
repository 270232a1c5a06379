package render

import (
	statepkg "github.com/kk-code-lab/partscat/internal/state"
	textutil "github.com/kk-code-lab/partscat/internal/textutil"
)

// Span is a half-open [Start, End) range of screen columns.
type Span struct {
	Start int
	End   int
}

// Contains reports whether x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.Start && x < s.End
}

// Width returns the number of cells covered.
func (s Span) Width() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Layout describes where each control lands on screen. The application uses
// it to map mouse clicks back onto controls.
type Layout struct {
	Width         int
	Height        int
	OpenButton    Span // toolbar row
	RefreshButton Span
	Title         Span
	SearchLabel   Span
	SearchField   Span
	Columns       [statepkg.LevelCount]Span
	TitleRow      int
	ListTop       int
	ListHeight    int
	StatusRow     int
	FooterRow     int
}

const (
	toolbarRow       = 0
	columnTitleRow   = 1
	listTopRow       = 2
	openButtonText   = "[Open]"
	refreshLabelText = "[Refresh]"
	searchLabelText  = "Search: "
	maxSearchWidth   = 30
	minSearchWidth   = 8
	columnSeparator  = 1
)

// ComputeLayout places the toolbar controls and the four columns for a
// screen of w×h cells.
func ComputeLayout(w, h int) Layout {
	l := Layout{
		Width:     w,
		Height:    h,
		TitleRow:  columnTitleRow,
		ListTop:   listTopRow,
		StatusRow: h - 2,
		FooterRow: h - 1,
	}
	l.ListHeight = h - 4
	if l.ListHeight < 1 {
		l.ListHeight = 1
	}

	x := 0
	l.OpenButton = Span{Start: x, End: x + textutil.DisplayWidth(openButtonText)}
	x = l.OpenButton.End + 1
	l.RefreshButton = Span{Start: x, End: x + textutil.DisplayWidth(refreshLabelText)}
	x = l.RefreshButton.End + 2

	labelWidth := textutil.DisplayWidth(searchLabelText)
	fieldWidth := w / 4
	if fieldWidth > maxSearchWidth {
		fieldWidth = maxSearchWidth
	}
	if fieldWidth < minSearchWidth {
		fieldWidth = minSearchWidth
	}
	if room := w - 1 - labelWidth - x; fieldWidth > room {
		fieldWidth = room
	}
	if fieldWidth < 0 {
		fieldWidth = 0
	}
	fieldEnd := w - 1
	l.SearchField = Span{Start: fieldEnd - fieldWidth, End: fieldEnd}
	l.SearchLabel = Span{Start: l.SearchField.Start - labelWidth, End: l.SearchField.Start}
	if l.SearchLabel.Start < x {
		l.SearchLabel.Start = x
	}

	titleEnd := l.SearchLabel.Start - 1
	if titleEnd > x {
		l.Title = Span{Start: x, End: titleEnd}
	} else {
		l.Title = Span{Start: x, End: x}
	}

	colWidth := (w - columnSeparator*(statepkg.LevelCount-1)) / statepkg.LevelCount
	if colWidth < 1 {
		colWidth = 1
	}
	start := 0
	for i := range l.Columns {
		end := start + colWidth
		if i == statepkg.LevelCount-1 || end > w {
			end = w
		}
		l.Columns[i] = Span{Start: start, End: end}
		start = end + columnSeparator
	}
	return l
}

// ColumnAt returns the level whose column contains x.
func (l Layout) ColumnAt(x int) (statepkg.Level, bool) {
	for i, span := range l.Columns {
		if span.Contains(x) {
			return statepkg.Level(i), true
		}
	}
	return 0, false
}

// ListRow converts a screen row into a row offset inside the column lists.
func (l Layout) ListRow(y int) (int, bool) {
	row := y - l.ListTop
	if row < 0 || row >= l.ListHeight || y >= l.StatusRow {
		return 0, false
	}
	return row, true
}
