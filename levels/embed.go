package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a character grid plus any entities placed off the grid. Rows are
// read top to bottom with one character per tile.
type Level struct {
	World    string   `json:"world"`
	TileSize float64  `json:"tile_size,omitempty"`
	Rows     []string `json:"rows"`
	Entities []Entity `json:"entities,omitempty"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Entity places a prefab at a world position. Props may carry "contents"
// and "remaining" to override a block's payload.
func (e Entity) Contents() string {
	s, _ := e.Props["contents"].(string)
	return s
}

// Remaining is the "remaining" prop, or 0 when unset.
func (e Entity) Remaining() int {
	switch v := e.Props["remaining"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func LoadLevelFromFS(name string) (*Level, error) {
	return LoadLevel(LevelsFS, name)
}

// LoadLevel reads name (".json" optional) from fsys.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	if name == "" {
		return nil, fmt.Errorf("read level: empty name")
	}
	if path.Ext(name) == "" {
		name += ".json"
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if len(lvl.Rows) == 0 {
		return nil, fmt.Errorf("level %s has no rows", name)
	}
	if lvl.World == "" {
		lvl.World = strings.TrimSuffix(name, ".json")
	}
	return &lvl, nil
}

// Names lists the embedded levels without their extension.
func Names() []string {
	entries, _ := fs.ReadDir(LevelsFS, ".")
	var out []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".json" {
			out = append(out, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(out)
	return out
}
