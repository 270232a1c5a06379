package state

import (
	fsutil "github.com/kk-code-lab/partscat/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// Level identifies one column of the catalogue hierarchy.
type Level int

const (
	LevelMake Level = iota
	LevelModel
	LevelYear
	LevelDocument
)

// LevelCount is the depth of the make/model/year/document hierarchy.
const LevelCount = 4

// Valid reports whether l names one of the four columns.
func (l Level) Valid() bool {
	return l >= LevelMake && l <= LevelDocument
}

func (l Level) String() string {
	switch l {
	case LevelMake:
		return "make"
	case LevelModel:
		return "model"
	case LevelYear:
		return "year"
	case LevelDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Column is one selection list. Selected is -1 when nothing is chosen.
type Column struct {
	Items    []FileEntry
	Selected int
	Scroll   int
}

// SelectedEntry returns the chosen entry, or nil.
func (c *Column) SelectedEntry() *FileEntry {
	if c.Selected < 0 || c.Selected >= len(c.Items) {
		return nil
	}
	return &c.Items[c.Selected]
}

func (c *Column) reset() {
	c.Items = nil
	c.Selected = -1
	c.Scroll = 0
}

// AppState is the single source of truth
type AppState struct {
	// Catalogue location, fixed at startup
	RootPath   string
	Extension  string
	HideHidden bool

	// Cascade
	Columns   [LevelCount]Column
	Documents []FileEntry // unfiltered listing for the selected make/model/year
	cascadeID int         // bumps on every selection above the document level

	// Search over Documents; Columns[LevelDocument].Items holds the visible subset
	SearchActive bool
	SearchQuery  string

	FocusedLevel Level
	HelpVisible  bool

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	dispatchAction func(Action)
}

// NewAppState builds an empty cascade rooted at root.
func NewAppState(root, extension string, hideHidden bool) *AppState {
	s := &AppState{
		RootPath:   root,
		Extension:  extension,
		HideHidden: hideHidden,
	}
	for i := range s.Columns {
		s.Columns[i].reset()
	}
	return s
}

// Column returns the column at level, or nil for an invalid level.
func (s *AppState) Column(level Level) *Column {
	if !level.Valid() {
		return nil
	}
	return &s.Columns[level]
}

// ActiveLevel is the level navigation keys currently act on.
func (s *AppState) ActiveLevel() Level {
	if s.SearchActive {
		return LevelDocument
	}
	return s.FocusedLevel
}

// SelectedNames returns the chosen name per level; empty strings mark gaps.
func (s *AppState) SelectedNames() [LevelCount]string {
	var names [LevelCount]string
	for i := range s.Columns {
		if entry := s.Columns[i].SelectedEntry(); entry != nil {
			names[i] = entry.Name
		}
	}
	return names
}

// SetDispatch exposes the reducer dispatch hook to other packages.
func (s *AppState) SetDispatch(fn func(Action)) {
	s.dispatchAction = fn
}

func (s *AppState) getDispatch() func(Action) {
	return s.dispatchAction
}

func (s *AppState) listOptions() fsutil.ListOptions {
	return fsutil.ListOptions{HideHidden: s.HideHidden}
}
