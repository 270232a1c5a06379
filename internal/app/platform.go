package app

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

var openerLookPath = exec.LookPath

func detectOpenerCommand(override string) ([]string, bool) {
	return detectOpenerCommandInternal(runtime.GOOS, override, openerLookPath)
}

// detectOpenerCommandInternal resolves the command that hands a document to
// the desktop. A configured override wins; otherwise the platform default is
// used.
func detectOpenerCommandInternal(goos, override string, lookPath func(string) (string, error)) ([]string, bool) {
	if args := parseCommandLine(override); len(args) > 0 {
		if resolved, ok := resolveExecutable(args[0], lookPath); ok {
			args[0] = resolved
			return args, true
		}
		return nil, false
	}

	switch strings.ToLower(goos) {
	case "windows":
		// rundll32 is always present; it returns before the viewer exits.
		return []string{"rundll32", "url.dll,FileProtocolHandler"}, true
	case "darwin":
		if resolved, ok := resolveExecutable("open", lookPath); ok {
			return []string{resolved}, true
		}
		return []string{"open"}, true
	}

	candidates := [][]string{
		{"xdg-open"},
		{"gio", "open"},
		{"wslview"},
	}
	for _, candidate := range candidates {
		if resolved, ok := resolveExecutable(candidate[0], lookPath); ok {
			return append([]string{resolved}, candidate[1:]...), true
		}
	}
	return nil, false
}

// parseCommandLine splits a configured command on whitespace, honouring
// single and double quotes.
func parseCommandLine(cmd string) []string {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return nil
	}

	var args []string
	var current strings.Builder
	inSingle := false
	inDouble := false

	for _, r := range cmd {
		switch r {
		case '\'':
			if inDouble {
				current.WriteRune(r)
			} else {
				inSingle = !inSingle
			}
			continue
		case '"':
			if inSingle {
				current.WriteRune(r)
			} else {
				inDouble = !inDouble
			}
			continue
		default:
			if !inSingle && !inDouble && unicode.IsSpace(r) {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
				continue
			}
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}

	if len(args) > 0 {
		args[0] = expandUserPath(args[0])
	}

	return args
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if sep := path[1]; sep != '/' && sep != '\\' {
		return path
	}
	return filepath.Join(home, path[2:])
}

func resolveExecutable(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}
	path, err := lookPath(expandUserPath(cmd))
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}
