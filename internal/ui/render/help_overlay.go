package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/partscat/internal/state"
	textutil "github.com/kk-code-lab/partscat/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func (r *Renderer) buildHelpOverlayLines(state *statepkg.AppState) []string {
	documentColumn := strings.ToLower(r.columnTitles[statepkg.LevelDocument])

	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "↑/↓ or k/j", desc: "Select in the focused column"},
				{keys: "←/→ or h/l", desc: "Move between columns"},
				{keys: "Tab/Shift+Tab", desc: "Move between columns"},
				{keys: "PgUp/PgDn", desc: "Page through a column"},
				{keys: "Home/End, g/G", desc: "First / last entry"},
				{keys: "↵ or o", desc: "Next column, or open the " + documentColumn},
			},
		},
		{
			title: "Search",
			entries: []helpOverlayEntry{
				{keys: "/", desc: "Filter the " + documentColumn + " column"},
				{keys: "Esc", desc: "Clear query, then leave search"},
			},
		},
		{
			title: "Actions",
			entries: []helpOverlayEntry{
				{keys: "r or F5", desc: "Refresh the catalogue"},
				{keys: "Double click", desc: "Open a " + documentColumn},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q or Ctrl+C", desc: "Quit"},
				{keys: "Ctrl+Z", desc: "Suspend"},
				{keys: "?", desc: "Close this help"},
			},
		},
	}

	if state != nil && state.RootPath != "" {
		sections = append(sections, helpOverlaySection{
			title: "Catalogue",
			entries: []helpOverlayEntry{
				{keys: "Root", desc: state.RootPath},
				{keys: "Documents", desc: "*" + state.Extension},
			},
		})
	}

	lines := make([]string, 0, 32)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}

	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.SanitizeTerminalText(entry.keys)
	desc := textutil.SanitizeTerminalText(entry.desc)
	return fmt.Sprintf("  %s %s", textutil.PadToWidth(key, 15), desc)
}

func (r *Renderer) drawHelpOverlay(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillSpan(0, w, y, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg).Bold(true)
	titleStart := 0
	if titleWidth := textutil.DisplayWidth(title); w > titleWidth {
		titleStart = (w - titleWidth) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range r.buildHelpOverlayLines(state) {
		if row >= h-1 {
			break
		}
		text := textutil.TruncateToWidth(strings.TrimRight(line, " "), w-4)
		r.drawTextLine(2, row, w-4, text, baseStyle)
		row++
	}

	if h > 0 {
		footer := textutil.TruncateToWidth("? toggle · Esc/q close", w)
		r.drawTextLine(0, h-1, w, footer, headerStyle)
	}
}
