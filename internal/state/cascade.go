package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/partscat/internal/fs"
)

// LoadRoot puts the cascade in its initial state: makes listed from the root,
// every lower column, the document cache and the search query cleared.
// The listing error, if any, is returned but the state is valid either way.
func (s *AppState) LoadRoot() error {
	for i := range s.Columns {
		s.Columns[i].reset()
	}
	s.Documents = nil
	s.SearchActive = false
	s.SearchQuery = ""
	s.FocusedLevel = LevelMake
	s.cascadeID++

	entries, err := fsutil.ListDirs(s.RootPath, s.listOptions())
	s.Columns[LevelMake].Items = entries
	return err
}

// LevelPath joins the root with the selections above level. It reports false
// when one of those selections is missing.
func (s *AppState) LevelPath(level Level) (string, bool) {
	parts := make([]string, 0, LevelCount+1)
	parts = append(parts, s.RootPath)
	for l := LevelMake; l < level && l < LevelCount; l++ {
		entry := s.Columns[l].SelectedEntry()
		if entry == nil {
			return "", false
		}
		parts = append(parts, entry.DiskName())
	}
	return filepath.Join(parts...), true
}

// DocumentPath resolves all four selections to a file path.
func (s *AppState) DocumentPath() (string, bool) {
	return s.LevelPath(LevelCount)
}

// selectEntry records index at level and invalidates everything below it.
// It reports whether the column under level now needs populating.
func (s *AppState) selectEntry(level Level, index int) bool {
	col := s.Column(level)
	if col == nil || index < 0 || index >= len(col.Items) {
		return false
	}

	col.Selected = index
	s.ensureVisible(level)
	if level == LevelDocument {
		return false
	}

	for l := level + 1; l < LevelCount; l++ {
		s.Columns[l].reset()
	}
	s.Documents = nil
	s.cascadeID++
	return true
}

// populateBelow lists the column under level using the current selections.
func (s *AppState) populateBelow(level Level) error {
	next := level + 1
	if !next.Valid() {
		return nil
	}
	dir, ok := s.LevelPath(next)
	if !ok {
		return nil
	}

	if next == LevelDocument {
		docs, err := fsutil.ListDocuments(dir, s.Extension, s.listOptions())
		s.Documents = docs
		s.applyFilter()
		return err
	}

	entries, err := fsutil.ListDirs(dir, s.listOptions())
	s.Columns[next].Items = entries
	return err
}

// SelectionPath joins the root with the unbroken run of selections starting
// at the make level.
func (s *AppState) SelectionPath() string {
	parts := []string{s.RootPath}
	for l := range s.Columns {
		entry := s.Columns[l].SelectedEntry()
		if entry == nil {
			break
		}
		parts = append(parts, entry.DiskName())
	}
	return filepath.Join(parts...)
}
