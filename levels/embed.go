package levels

import (
	"embed"
	"fmt"

	"github.com/milk9111/obstaclecourse/tilemap"
)

//go:embed *.json
var LevelsFS embed.FS

// Default names the embedded level played when no level file is given.
const Default = "map.json"

// LoadLevelFromFS loads an embedded level by name.
func LoadLevelFromFS(name string) (*tilemap.Tilemap, error) {
	f, err := LevelsFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("levels: open %s: %w", name, err)
	}
	defer f.Close()
	m, err := tilemap.Load(f)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return m, nil
}

// Load reads the level file at path, or the embedded default when path is
// empty.
func Load(path string) (*tilemap.Tilemap, error) {
	if path == "" {
		return LoadLevelFromFS(Default)
	}
	m, err := tilemap.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", path, err)
	}
	return m, nil
}
