package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/partscat/internal/config"
	statepkg "github.com/kk-code-lab/partscat/internal/state"
	textutil "github.com/kk-code-lab/partscat/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen       tcell.Screen
	theme        ColorTheme
	title        string
	columnTitles [statepkg.LevelCount]string
	layout       Layout
	hasLayout    bool
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
	r.SetLabels("", nil)
	return r
}

// SetLabels overrides the toolbar title and column headings. Empty values
// fall back to the configuration defaults.
func (r *Renderer) SetLabels(title string, columns []string) {
	r.title = config.DefaultTitle
	if title != "" {
		r.title = title
	}
	for i := range r.columnTitles {
		r.columnTitles[i] = config.DefaultColumns[i]
		if i < len(columns) && columns[i] != "" {
			r.columnTitles[i] = columns[i]
		}
	}
}

// LastLayout returns the layout of the most recent frame.
func (r *Renderer) LastLayout() (Layout, bool) {
	return r.layout, r.hasLayout
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	r.layout = ComputeLayout(w, h)
	r.hasLayout = true

	if state == nil {
		r.screen.Show()
		return
	}

	if state.HelpVisible {
		r.screen.HideCursor()
		r.drawHelpOverlay(state, w, h)
		r.screen.Show()
		return
	}

	r.drawToolbar(state)
	r.drawColumns(state)
	r.drawStatusLine(state)
	r.drawFooter(state)

	r.screen.Show()
}

func (r *Renderer) drawToolbar(state *statepkg.AppState) {
	l := r.layout
	if l.Height <= toolbarRow {
		return
	}
	barStyle := tcell.StyleDefault.Background(r.theme.ToolbarBg).Foreground(r.theme.ToolbarFg)
	buttonStyle := tcell.StyleDefault.Background(r.theme.ButtonBg).Foreground(r.theme.ButtonFg)
	r.fillSpan(0, l.Width, toolbarRow, barStyle)

	r.drawTextLine(l.OpenButton.Start, toolbarRow, l.OpenButton.Width(), openButtonText, buttonStyle)
	r.drawTextLine(l.RefreshButton.Start, toolbarRow, l.RefreshButton.Width(), refreshLabelText, buttonStyle)

	if l.Title.Width() > 0 {
		title := textutil.TruncateToWidth(textutil.SanitizeTerminalText(r.title), l.Title.Width())
		r.drawTextLine(l.Title.Start, toolbarRow, l.Title.Width(), title, barStyle.Bold(true))
	}

	r.drawTextLine(l.SearchLabel.Start, toolbarRow, l.SearchLabel.Width(), searchLabelText, barStyle)

	fieldStyle := tcell.StyleDefault.Background(r.theme.ButtonBg).Foreground(r.theme.ButtonFg)
	if state.SearchActive {
		fieldStyle = fieldStyle.Underline(true)
	}
	r.fillSpan(l.SearchField.Start, l.SearchField.End, toolbarRow, fieldStyle)

	// Leave one cell for the cursor.
	query := tailToWidth(textutil.SanitizeTerminalText(state.SearchQuery), l.SearchField.Width()-1)
	end := r.drawTextLine(l.SearchField.Start, toolbarRow, l.SearchField.Width(), query, fieldStyle)

	if state.SearchActive && end < l.SearchField.End {
		r.screen.ShowCursor(end, toolbarRow)
	} else {
		r.screen.HideCursor()
	}
}

func (r *Renderer) drawColumns(state *statepkg.AppState) {
	l := r.layout
	active := state.ActiveLevel()

	for level := statepkg.LevelMake; level < statepkg.LevelCount; level++ {
		span := l.Columns[level]
		if span.Width() <= 0 {
			continue
		}
		focused := level == active
		r.drawColumnTitle(level, span, focused)
		r.drawColumnItems(state, level, span, focused)

		if level < statepkg.LevelCount-1 && span.End < l.Width {
			sepStyle := tcell.StyleDefault.Foreground(r.theme.SeparatorFg)
			for y := l.TitleRow; y < l.StatusRow && y < l.Height; y++ {
				r.screen.SetContent(span.End, y, '│', nil, sepStyle)
			}
		}
	}
}

func (r *Renderer) drawColumnTitle(level statepkg.Level, span Span, focused bool) {
	l := r.layout
	if l.TitleRow >= l.StatusRow {
		return
	}
	style := tcell.StyleDefault.Foreground(r.theme.ColumnTitleFg).Bold(true)
	if focused {
		style = tcell.StyleDefault.Background(r.theme.FocusTitleBg).Foreground(r.theme.FocusTitleFg).Bold(true)
	}
	r.drawCell(span.Start, l.TitleRow, span.Width(), " "+r.columnTitles[level], style)
}

func (r *Renderer) drawColumnItems(state *statepkg.AppState, level statepkg.Level, span Span, focused bool) {
	l := r.layout
	col := state.Column(level)

	if len(col.Items) == 0 {
		if placeholder := columnPlaceholder(state, level); placeholder != "" && l.ListTop < l.StatusRow {
			style := tcell.StyleDefault.Foreground(r.theme.PlaceholderFg).Italic(true)
			r.drawCell(span.Start, l.ListTop, span.Width(), " "+placeholder, style)
		}
		return
	}

	for row := 0; row < l.ListHeight; row++ {
		y := l.ListTop + row
		idx := col.Scroll + row
		if y >= l.StatusRow || idx >= len(col.Items) {
			break
		}
		entry := col.Items[idx]

		style := tcell.StyleDefault.Foreground(r.theme.DocumentFg)
		switch {
		case entry.IsHidden():
			style = tcell.StyleDefault.Foreground(r.theme.HiddenFg)
		case entry.IsSymlink:
			style = tcell.StyleDefault.Foreground(r.theme.SymlinkFg)
		case entry.IsDir:
			style = tcell.StyleDefault.Foreground(r.theme.DirectoryFg)
		}
		if idx == col.Selected {
			if focused {
				style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			} else {
				style = tcell.StyleDefault.Background(r.theme.InactiveSelectionBg).Foreground(r.theme.InactiveSelectionFg)
			}
		}

		r.drawCell(span.Start, y, span.Width(), " "+entry.Name, style)
	}
}

// columnPlaceholder explains an empty column, or returns "" when the column
// is empty only because nothing above it is selected.
func columnPlaceholder(state *statepkg.AppState, level statepkg.Level) string {
	if level > statepkg.LevelMake && state.Columns[level-1].SelectedEntry() == nil {
		return ""
	}
	if level == statepkg.LevelDocument && state.SearchQuery != "" && len(state.Documents) > 0 {
		return "No matches"
	}
	return "No entries"
}

func (r *Renderer) drawStatusLine(state *statepkg.AppState) {
	l := r.layout
	if l.StatusRow < 0 || l.StatusRow <= l.TitleRow {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillSpan(0, l.Width, l.StatusRow, style)

	counter := ""
	if state.SearchQuery != "" && len(state.Documents) > 0 {
		counter = fmt.Sprintf(" %d/%d ", len(state.Columns[statepkg.LevelDocument].Items), len(state.Documents))
	}
	counterWidth := textutil.DisplayWidth(counter)
	if counterWidth >= l.Width {
		counter, counterWidth = "", 0
	}

	r.drawCell(0, l.StatusRow, l.Width-counterWidth, state.SelectionPath(), style)
	if counter != "" {
		r.drawTextLine(l.Width-counterWidth, l.StatusRow, counterWidth, counter, style.Bold(true))
	}
}

func (r *Renderer) drawFooter(state *statepkg.AppState) {
	l := r.layout
	if l.FooterRow <= l.StatusRow || l.FooterRow >= l.Height {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Dim(true)
	r.drawCell(0, l.FooterRow, l.Width, buildFooterHelpText(state), style)
}
