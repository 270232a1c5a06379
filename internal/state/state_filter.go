package state

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// FilterEntries returns, in order, the entries whose lowercase name contains
// the lowercase query. An empty query returns every entry. The input is never
// modified.
func FilterEntries(query string, entries []FileEntry) []FileEntry {
	if query == "" {
		return slices.Clone(entries)
	}
	needle := strings.ToLower(query)
	matches := make([]FileEntry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// applyFilter rebuilds the visible document column from the cache. The
// selected document survives when it is still visible.
func (s *AppState) applyFilter() {
	col := &s.Columns[LevelDocument]
	prevPath := ""
	if prev := col.SelectedEntry(); prev != nil {
		prevPath = prev.FullPath
	}

	col.Items = FilterEntries(s.SearchQuery, s.Documents)
	col.Selected = -1
	col.Scroll = 0

	if prevPath != "" {
		for idx, entry := range col.Items {
			if entry.FullPath == prevPath {
				col.Selected = idx
				break
			}
		}
	}
	s.ensureVisible(LevelDocument)
}

func (s *AppState) setSearchQuery(query string) {
	if query == s.SearchQuery {
		return
	}
	s.SearchQuery = query
	s.applyFilter()
}

func trimLastRune(text string) string {
	if text == "" {
		return text
	}
	_, size := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-size]
}
