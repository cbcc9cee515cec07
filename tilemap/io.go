package tilemap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	ErrKeyMismatch  = errors.New("tilemap: cell key does not match tile pos")
	ErrMissingField = errors.New("tilemap: missing field")
)

// document is the level file layout.
type document struct {
	Tilemap  map[GridPos]Tile `json:"tilemap"`
	TileSize int              `json:"tile_size"`
	Offgrid  []OffgridTile    `json:"offgrid"`
}

// rawDocument keeps the cell keys as written so they can be checked against
// the canonical form of each tile's pos.
type rawDocument struct {
	Tilemap  map[string]Tile `json:"tilemap"`
	TileSize int             `json:"tile_size"`
	Offgrid  []OffgridTile   `json:"offgrid"`
}

// Load reads a level document.
func Load(r io.Reader) (*Tilemap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tilemap: read: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("tilemap: unmarshal: %w", err)
	}
	for _, name := range []string{"tilemap", "tile_size", "offgrid"} {
		if _, ok := fields[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingField, name)
		}
	}

	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tilemap: unmarshal: %w", err)
	}
	if doc.TileSize <= 0 {
		return nil, fmt.Errorf("tilemap: invalid tile_size %d", doc.TileSize)
	}

	m := New(doc.TileSize)
	for key, t := range doc.Tilemap {
		if !t.Kind.Valid() {
			return nil, fmt.Errorf("%w at %q", ErrUnknownKind, key)
		}
		if key != t.Pos.Key() {
			return nil, fmt.Errorf("%w: %q holds %s", ErrKeyMismatch, key, t.Pos)
		}
		m.grid[t.Pos] = t
	}
	for i, t := range doc.Offgrid {
		if !t.Kind.Valid() {
			return nil, fmt.Errorf("%w in offgrid[%d]", ErrUnknownKind, i)
		}
	}
	m.offgrid = doc.Offgrid
	return m, nil
}

// LoadFile reads a level document from disk.
func LoadFile(path string) (*Tilemap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()
	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes the tilemap as a level document.
func (m *Tilemap) Save(w io.Writer) error {
	doc := document{
		Tilemap:  m.grid,
		TileSize: m.tileSize,
		Offgrid:  m.offgrid,
	}
	if doc.Offgrid == nil {
		doc.Offgrid = []OffgridTile{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("tilemap: encode: %w", err)
	}
	return nil
}

// SaveFile writes the tilemap to path, creating parent directories.
func (m *Tilemap) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("tilemap: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tilemap: create %s: %w", path, err)
	}
	if err := m.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
