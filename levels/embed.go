// Package levels loads level specifications: player tuning, the static
// obstacle layout, and moving platform rows that are either listed literally
// or produced by a layout script.
package levels

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var specsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a level spec by name, preferring an on-disk copy under levels/
// (so edits are picked up without a rebuild) and falling back to the
// embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

// LoadScript reads a layout script by name, disk-first like Load.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanSpecPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".yaml") {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	s = strings.TrimPrefix(s, "scripts/")
	return "scripts/" + s
}
