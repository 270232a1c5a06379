package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/partscat/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	if state.SearchActive {
		segments := []string{"type: filter", "↑↓: select", "↵: open"}
		if state.SearchQuery != "" {
			segments = append(segments, "Esc: clear")
		} else {
			segments = append(segments, "Esc: exit search")
		}
		return segments
	}

	segments := []string{"↑↓: select", "←→/Tab: column"}
	if state.FocusedLevel == statepkg.LevelDocument {
		segments = append(segments, "↵: open")
	} else {
		segments = append(segments, "↵: next column")
	}
	segments = append(segments, "/: search", "r: refresh", "?: help", "q: quit")
	return segments
}
