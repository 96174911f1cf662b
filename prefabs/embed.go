package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Load returns a prefab file, preferring ./prefabs/<name> on disk over the
// embedded copy so tuning can be edited without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// ModTime returns the modification time of name's disk override, if any.
func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// ModTimes remembers the last modification time seen for each disk prefab.
type ModTimes map[string]time.Time

// Changed reports whether name differs from the last time it was checked.
// Watchers fire several events per save; only the first one with a new
// modification time counts. A removed override always counts.
func (m ModTimes) Changed(name string) bool {
	t, ok := ModTime(name)
	if !ok {
		delete(m, name)
		return true
	}
	if prev, seen := m[name]; seen && prev.Equal(t) {
		return false
	}
	m[name] = t
	return true
}

// Names lists the embedded prefab files.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(PrefabsFS, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && isSpecFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// FileName maps a prefab name such as "koopa" to its file.
func FileName(name string) string {
	if isSpecFile(name) {
		return cleanPrefabPath(name)
	}
	return cleanPrefabPath(name) + ".yaml"
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
