package tilemap

// direction bits for the 4-neighborhood of a tile.
const (
	dirRight = 1 << iota
	dirLeft
	dirUp
	dirDown
)

var autotileShifts = [4]struct {
	dx, dy int
	bit    int
}{
	{1, 0, dirRight},
	{-1, 0, dirLeft},
	{0, -1, dirUp},
	{0, 1, dirDown},
}

// autotileVariants maps the set of same-kind neighbors to the variant that
// draws the matching edge, corner or center piece.
var autotileVariants = map[int]int{
	dirRight | dirDown:                   0,
	dirRight | dirDown | dirLeft:         1,
	dirLeft | dirDown:                    2,
	dirLeft | dirUp | dirDown:            3,
	dirLeft | dirUp:                      4,
	dirLeft | dirUp | dirRight:           5,
	dirRight | dirUp:                     6,
	dirRight | dirUp | dirDown:           7,
	dirRight | dirLeft | dirDown | dirUp: 8,
}

// neighborMask returns the directions in which a tile of the same kind sits
// next to t.
func (m *Tilemap) neighborMask(t Tile) int {
	mask := 0
	for _, s := range autotileShifts {
		if n, ok := m.grid[t.Pos.Add(s.dx, s.dy)]; ok && n.Kind == t.Kind {
			mask |= s.bit
		}
	}
	return mask
}

// Autotile picks the variant of every autotiled grid tile from its same-kind
// neighbors. Tiles whose neighbor set has no table entry keep their variant.
// Variants never affect the neighbor sets, so repeated runs are stable.
func (m *Tilemap) Autotile() int {
	changed := 0
	for p, t := range m.grid {
		if !t.Kind.Autotiled() {
			continue
		}
		v, ok := autotileVariants[m.neighborMask(t)]
		if !ok || v == t.Variant {
			continue
		}
		t.Variant = v
		m.grid[p] = t
		changed++
	}
	return changed
}
