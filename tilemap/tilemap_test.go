package tilemap

import (
	"image"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMap(tiles ...Tile) *Tilemap {
	m := New(16)
	for _, t := range tiles {
		m.Set(t)
	}
	return m
}

func tile(k Kind, x, y int) Tile {
	return Tile{Kind: k, Pos: GridPos{X: x, Y: y}}
}

func TestKindMetadata(t *testing.T) {
	cases := []struct {
		kind                          Kind
		physical, solid, hazard, goal bool
		autotile                      bool
	}{
		{Stone, true, true, false, false, true},
		{Grass, true, true, false, false, false},
		{Platforms, true, true, false, false, false},
		{Bridge, true, true, false, false, false},
		{Lava, true, false, true, false, false},
		{Trophy, true, false, false, true, false},
		{Decor, false, false, false, false, false},
		{LargeDecor, false, false, false, false, false},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			assert.Equal(t, c.physical, c.kind.Physical())
			assert.Equal(t, c.solid, c.kind.Solid())
			assert.Equal(t, c.hazard, c.kind.Hazard())
			assert.Equal(t, c.goal, c.kind.Goal())
			assert.Equal(t, c.autotile, c.kind.Autotiled())

			parsed, err := ParseKind(c.kind.String())
			require.NoError(t, err)
			assert.Equal(t, c.kind, parsed)
		})
	}

	_, err := ParseKind("water")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.False(t, KindInvalid.Valid())
}

func TestNeighborTiles(t *testing.T) {
	m := newMap(
		tile(Stone, 3, 3), // center of (50,50)
		tile(Grass, 2, 2),
		tile(Grass, 4, 4),
		tile(Stone, 5, 3), // two cells away
		tile(Decor, 3, 1), // two cells up
	)

	got := m.NeighborTiles(cp.Vector{X: 50, Y: 50})
	require.Len(t, got, 3)
	// order follows the neighborhood scan: (-1,-1) before (0,0) before (1,1)
	assert.Equal(t, GridPos{2, 2}, got[0].Pos)
	assert.Equal(t, GridPos{3, 3}, got[1].Pos)
	assert.Equal(t, GridPos{4, 4}, got[2].Pos)

	assert.Empty(t, m.NeighborTiles(cp.Vector{X: 500, Y: 500}))
}

func TestNeighborTilesNegativePositions(t *testing.T) {
	m := newMap(tile(Stone, -1, -1), tile(Stone, -2, -2))
	got := m.NeighborTiles(cp.Vector{X: -0.5, Y: -0.5})
	assert.Len(t, got, 2)
}

func TestCollisionGeometryAround(t *testing.T) {
	cases := []struct {
		name         string
		kind         Kind
		wantRects    int
		hazard, goal bool
	}{
		{"stone_is_solid", Stone, 1, false, false},
		{"grass_is_solid", Grass, 1, false, false},
		{"lava_is_hazard_only", Lava, 0, true, false},
		{"trophy_is_goal_only", Trophy, 0, false, true},
		{"decor_contributes_nothing", Decor, 0, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newMap(tile(c.kind, 3, 4))
			rects, hazard, goal := m.CollisionGeometryAround(cp.Vector{X: 52, Y: 66})
			assert.Len(t, rects, c.wantRects)
			assert.Equal(t, c.hazard, hazard)
			assert.Equal(t, c.goal, goal)
			if c.wantRects == 1 {
				assert.Equal(t, common.Rect{X: 48, Y: 64, Width: 16, Height: 16}, rects[0])
			}
		})
	}
}

func TestCollisionGeometryMixed(t *testing.T) {
	m := newMap(tile(Stone, 0, 1), tile(Lava, 1, 1), tile(Lava, 2, 1), tile(Trophy, 1, 0))
	rects, hazard, goal := m.CollisionGeometryAround(cp.Vector{X: 20, Y: 20})
	assert.Len(t, rects, 1)
	assert.True(t, hazard)
	assert.True(t, goal)
}

func TestEditAPI(t *testing.T) {
	m := New(0)
	assert.Equal(t, DefaultTileSize, m.TileSize())

	_, _, ok := m.Bounds()
	assert.False(t, ok)

	m.Set(tile(Stone, 2, -1))
	m.Set(tile(Grass, -3, 4))
	m.Set(tile(Lava, 2, -1))
	assert.Equal(t, 2, m.Len())

	got, ok := m.At(GridPos{2, -1})
	require.True(t, ok)
	assert.Equal(t, Lava, got.Kind)

	lo, hi, ok := m.Bounds()
	require.True(t, ok)
	assert.Equal(t, GridPos{-3, -1}, lo)
	assert.Equal(t, GridPos{2, 4}, hi)

	tiles := m.Tiles()
	require.Len(t, tiles, 2)
	assert.Equal(t, GridPos{2, -1}, tiles[0].Pos)

	assert.True(t, m.Remove(GridPos{2, -1}))
	assert.False(t, m.Remove(GridPos{2, -1}))

	m.AddOffgrid(OffgridTile{Kind: Decor, Pos: [2]float64{1, 2}})
	off := m.Offgrid()
	off[0].Variant = 9
	assert.Equal(t, 0, m.Offgrid()[0].Variant)
}

type drawCall struct {
	img  image.Image
	x, y float64
}

type recordingCanvas struct {
	w, h  int
	calls []drawCall
}

func (c *recordingCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordingCanvas) DrawImage(img image.Image, x, y float64, flipX bool) {
	c.calls = append(c.calls, drawCall{img: img, x: x, y: y})
}

type imageTable map[Kind][]image.Image

func (t imageTable) TileImages(k Kind) []image.Image { return t[k] }

func TestDraw(t *testing.T) {
	stone := []image.Image{image.NewRGBA(image.Rect(0, 0, 16, 16)), image.NewRGBA(image.Rect(0, 0, 16, 16))}
	decor := []image.Image{image.NewRGBA(image.Rect(0, 0, 8, 8))}
	src := imageTable{Stone: stone, Decor: decor}

	m := newMap(
		tile(Stone, 0, 0),
		Tile{Kind: Stone, Pos: GridPos{1, 0}, Variant: 1},
		Tile{Kind: Stone, Pos: GridPos{2, 0}, Variant: 7}, // no such variant
		tile(Stone, 10, 0),                               // off screen
		tile(Grass, 0, 1),                                // no images at all
	)
	m.AddOffgrid(OffgridTile{Kind: Decor, Pos: [2]float64{30.5, 4}})
	m.AddOffgrid(OffgridTile{Kind: Decor, Pos: [2]float64{3, 4}, Variant: -1})

	c := &recordingCanvas{w: 40, h: 20}
	m.Draw(c, src, common.Offset{X: 4, Y: 2})

	require.Len(t, c.calls, 3)
	assert.Equal(t, drawCall{decor[0], 26.5, 2}, c.calls[0])
	assert.Equal(t, drawCall{stone[0], -4, -2}, c.calls[1])
	assert.Equal(t, drawCall{stone[1], 12, -2}, c.calls[2])
}

func TestDrawIncludesPartialEdgeCells(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	src := imageTable{Stone: {img}}
	m := newMap(tile(Stone, -1, 0), tile(Stone, 3, 0), tile(Stone, 4, 0))

	c := &recordingCanvas{w: 40, h: 16}
	m.Draw(c, src, common.Offset{X: 10, Y: 0})

	// visible cells are 0..3 horizontally; -1 and 4 are fully outside
	require.Len(t, c.calls, 1)
	assert.Equal(t, 38.0, c.calls[0].x)
}
