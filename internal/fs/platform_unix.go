//go:build !windows

package fs

// IsHidden treats dot-prefixed names as hidden.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// ShouldHideFromListing is a no-op outside Windows.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
