// Package symbols resolves parts against the KiCad symbol libraries
// installed on the machine. The part catalog in this repository is the
// source of truth for builds; this package exists to cross-check it against
// the real libraries and to search them.
package symbols

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvVar communicates the symbol-library directory to the resolver,
// overriding the per-platform defaults.
const EnvVar = "KICAD8_SYMBOL_DIR"

// DefaultSearchPaths returns the conventional KiCad symbol directories for
// the current operating system, newest KiCad version first.
func DefaultSearchPaths() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/KiCad/KiCad.app/Contents/SharedSupport/symbols",
		}
	case "windows":
		return []string{
			`C:\Program Files\KiCad\9.0\share\kicad\symbols`,
			`C:\Program Files\KiCad\8.0\share\kicad\symbols`,
		}
	default:
		return []string{
			"/usr/share/kicad/symbols",
			"/usr/local/share/kicad/symbols",
		}
	}
}

// FindSymbolDir locates the symbol-library directory: the environment
// variable when set, otherwise the first existing default path. Symbol
// resolution is impossible without one, so absence is an error.
func FindSymbolDir() (string, error) {
	if dir := os.Getenv(EnvVar); dir != "" {
		if !dirExists(dir) {
			return "", fmt.Errorf("%s points to %s, which does not exist", EnvVar, dir)
		}
		return dir, nil
	}
	for _, dir := range DefaultSearchPaths() {
		if dirExists(dir) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no KiCad symbol directory found, set %s", EnvVar)
}

// LibFile returns the path of a library's .kicad_sym file within dir.
func LibFile(dir, lib string) string {
	return filepath.Join(dir, lib+".kicad_sym")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
