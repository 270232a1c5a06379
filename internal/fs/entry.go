package fs

import (
	"path/filepath"
	"time"
)

// Entry represents a single file or directory on disk.
type Entry struct {
	Name      string // NFC-normalized, used for display and matching
	FullPath  string // on-disk spelling
	IsDir     bool
	IsSymlink bool
	Size      int64
	Modified  time.Time
}

// DiskName returns the entry's name exactly as the filesystem stores it.
func (e Entry) DiskName() string {
	if e.FullPath == "" {
		return e.Name
	}
	return filepath.Base(e.FullPath)
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.FullPath, e.DiskName())
}

// Names projects entries onto their display names.
func Names(entries []Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
