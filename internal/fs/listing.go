package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Predicate decides whether an entry belongs in a listing.
type Predicate func(Entry) bool

// IsDirectory accepts directories, including symlinks to directories.
func IsDirectory(e Entry) bool {
	return e.IsDir
}

// HasExtension accepts regular files whose name ends in ext, ignoring case.
func HasExtension(ext string) Predicate {
	suffix := strings.ToLower(ext)
	return func(e Entry) bool {
		if e.IsDir {
			return false
		}
		return strings.HasSuffix(strings.ToLower(e.DiskName()), suffix)
	}
}

// ListOptions tunes what List returns.
type ListOptions struct {
	HideHidden bool
}

// List reads dir and returns the entries accepted by keep, sorted by name.
// A missing or unreadable directory yields no entries; the read error is
// returned alongside so callers can log it, but the listing is still usable.
func List(dir string, opts ListOptions, keep Predicate) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rawName := de.Name()
		fullPath := filepath.Join(dir, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}
		if opts.HideHidden && IsHidden(fullPath, rawName) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}

		isDir := de.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0
		if isSymlink {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		entry := Entry{
			Name:      norm.NFC.String(rawName),
			FullPath:  fullPath,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Modified:  info.ModTime(),
		}
		if keep != nil && !keep(entry) {
			continue
		}
		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

// ListDirs returns the immediate subdirectories of dir.
func ListDirs(dir string, opts ListOptions) ([]Entry, error) {
	return List(dir, opts, IsDirectory)
}

// ListDocuments returns the files in dir carrying the document extension.
func ListDocuments(dir, ext string, opts ListOptions) ([]Entry, error) {
	return List(dir, opts, HasExtension(ext))
}

// SortEntries orders entries lexicographically by name.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
