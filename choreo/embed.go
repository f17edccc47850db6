package choreo

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var DefaultsFS embed.FS

// Dir is where Load looks for on-disk overrides of the embedded files.
var Dir = "choreo"

// Load returns the named document, preferring a copy under Dir over the
// embedded default.
func Load(name string) (*File, error) {
	clean := cleanName(name)
	data, err := os.ReadFile(filepath.Join(Dir, clean))
	if err != nil {
		data, err = DefaultsFS.ReadFile("defaults/" + clean)
		if err != nil {
			return nil, fmt.Errorf("choreo: load %s: %w", clean, err)
		}
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("choreo: %s: %w", clean, err)
	}
	return f, nil
}

// Defaults lists the embedded document names.
func Defaults() []string {
	entries, err := fs.ReadDir(DefaultsFS, "defaults")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if isSpecFile(e.Name()) {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

func cleanName(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "defaults/"); ok {
		s = after
	}
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}
	if !isSpecFile(s) {
		s += ".yaml"
	}
	return s
}
