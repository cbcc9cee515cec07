package tilemap

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/common"
)

// DefaultTileSize is the cell size used before a level is loaded.
const DefaultTileSize = 16

// neighborOffsets is the 3x3 neighborhood scanned around a position,
// including the center cell.
var neighborOffsets = [9][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// Tilemap owns the grid tiles and the off-grid decor of a level.
type Tilemap struct {
	tileSize int
	grid     map[GridPos]Tile
	offgrid  []OffgridTile
}

// New creates an empty tilemap.
func New(tileSize int) *Tilemap {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Tilemap{
		tileSize: tileSize,
		grid:     make(map[GridPos]Tile),
	}
}

func (m *Tilemap) TileSize() int { return m.tileSize }
func (m *Tilemap) Len() int      { return len(m.grid) }

// At returns the grid tile at cell p.
func (m *Tilemap) At(p GridPos) (Tile, bool) {
	t, ok := m.grid[p]
	return t, ok
}

// Set places t at its own cell, replacing whatever was there.
func (m *Tilemap) Set(t Tile) {
	m.grid[t.Pos] = t
}

// Remove deletes the grid tile at p and reports whether one existed.
func (m *Tilemap) Remove(p GridPos) bool {
	if _, ok := m.grid[p]; !ok {
		return false
	}
	delete(m.grid, p)
	return true
}

// AddOffgrid appends a decorative tile. Off-grid tiles draw in insertion order.
func (m *Tilemap) AddOffgrid(t OffgridTile) {
	m.offgrid = append(m.offgrid, t)
}

// Offgrid returns a copy of the off-grid tiles in draw order.
func (m *Tilemap) Offgrid() []OffgridTile {
	out := make([]OffgridTile, len(m.offgrid))
	copy(out, m.offgrid)
	return out
}

// Tiles returns every grid tile sorted by row, then column.
func (m *Tilemap) Tiles() []Tile {
	out := make([]Tile, 0, len(m.grid))
	for _, t := range m.grid {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pos.Y != out[j].Pos.Y {
			return out[i].Pos.Y < out[j].Pos.Y
		}
		return out[i].Pos.X < out[j].Pos.X
	})
	return out
}

// Bounds returns the inclusive min and max cells holding grid tiles. ok is
// false for an empty grid.
func (m *Tilemap) Bounds() (lo, hi GridPos, ok bool) {
	for p := range m.grid {
		if !ok {
			lo, hi, ok = p, p, true
			continue
		}
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi, ok
}

// CellAt returns the grid cell containing the pixel position pos.
func (m *Tilemap) CellAt(pos cp.Vector) GridPos {
	return GridPos{X: common.Cell(pos.X, m.tileSize), Y: common.Cell(pos.Y, m.tileSize)}
}

// CellRect returns the pixel rectangle of cell p.
func (m *Tilemap) CellRect(p GridPos) common.Rect {
	ts := float64(m.tileSize)
	return common.Rect{X: float64(p.X) * ts, Y: float64(p.Y) * ts, Width: ts, Height: ts}
}

// NeighborTiles returns the tiles in the 3x3 block of cells centered on the
// cell containing pos. Empty cells are skipped.
func (m *Tilemap) NeighborTiles(pos cp.Vector) []Tile {
	center := m.CellAt(pos)
	tiles := make([]Tile, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if t, ok := m.grid[center.Add(off[0], off[1])]; ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// CollisionGeometryAround scans the neighborhood of pos once and returns the
// solid tile rectangles, whether a hazard tile is nearby and whether a goal
// tile is nearby.
func (m *Tilemap) CollisionGeometryAround(pos cp.Vector) (rects []common.Rect, hazard, goal bool) {
	for _, t := range m.NeighborTiles(pos) {
		if t.Kind.Solid() {
			rects = append(rects, m.CellRect(t.Pos))
		}
		if t.Kind.Hazard() {
			hazard = true
		}
		if t.Kind.Goal() {
			goal = true
		}
	}
	return rects, hazard, goal
}
