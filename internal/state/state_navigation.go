package state

// chromeRows counts the toolbar, column titles, status and footer rows.
const chromeRows = 4

// ListHeight is the number of item rows each column can show.
func (s *AppState) ListHeight() int {
	h := s.ScreenHeight - chromeRows
	if h < 1 {
		h = 1
	}
	return h
}

// ensureVisible adjusts the column's scroll so its selection is on screen.
func (s *AppState) ensureVisible(level Level) {
	col := s.Column(level)
	if col == nil {
		return
	}
	height := s.ListHeight()

	if col.Selected >= 0 {
		if col.Selected < col.Scroll {
			col.Scroll = col.Selected
		} else if col.Selected >= col.Scroll+height {
			col.Scroll = col.Selected - height + 1
		}
	}

	maxScroll := len(col.Items) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if col.Scroll > maxScroll {
		col.Scroll = maxScroll
	}
	if col.Scroll < 0 {
		col.Scroll = 0
	}
}

// navigationTarget returns the index a movement action selects in the column
// at level. It reports false when the selection would not change.
func (s *AppState) navigationTarget(level Level, action Action) (int, bool) {
	col := s.Column(level)
	if col == nil || len(col.Items) == 0 {
		return 0, false
	}
	last := len(col.Items) - 1
	current := col.Selected
	page := s.ListHeight()

	target := current
	switch action.(type) {
	case NavigateDownAction:
		if current < 0 {
			target = 0
		} else if current < last {
			target = current + 1
		}
	case NavigateUpAction:
		if current < 0 {
			target = last
		} else if current > 0 {
			target = current - 1
		}
	case ScrollPageDownAction:
		if current < 0 {
			current = 0
		}
		target = min(current+page, last)
	case ScrollPageUpAction:
		if current < 0 {
			current = 0
		}
		target = max(current-page, 0)
	case ScrollToStartAction:
		target = 0
	case ScrollToEndAction:
		target = last
	default:
		return 0, false
	}

	if target == col.Selected {
		return 0, false
	}
	return target, true
}

// focusStep moves focus by delta columns, never into an empty column.
func (s *AppState) focusStep(delta int) bool {
	target := s.FocusedLevel + Level(delta)
	if !target.Valid() {
		return false
	}
	if delta > 0 && len(s.Columns[target].Items) == 0 {
		return false
	}
	s.FocusedLevel = target
	return true
}
