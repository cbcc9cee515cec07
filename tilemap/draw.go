package tilemap

import (
	"image"

	"github.com/milk9111/obstaclecourse/common"
)

// ImageSource supplies the variant images of each tile kind.
type ImageSource interface {
	TileImages(k Kind) []image.Image
}

// Draw renders the off-grid decor, then the grid cells overlapping the
// visible area. Variants without an image are skipped.
func (m *Tilemap) Draw(c common.Canvas, src ImageSource, off common.Offset) {
	for _, t := range m.offgrid {
		if img := variantImage(src, t.Kind, t.Variant); img != nil {
			c.DrawImage(img, t.Pos[0]-float64(off.X), t.Pos[1]-float64(off.Y), false)
		}
	}

	w, h := c.Size()
	x0, x1 := common.FloorDiv(off.X, m.tileSize), common.FloorDiv(off.X+w, m.tileSize)
	y0, y1 := common.FloorDiv(off.Y, m.tileSize), common.FloorDiv(off.Y+h, m.tileSize)
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			t, ok := m.grid[GridPos{X: x, Y: y}]
			if !ok {
				continue
			}
			img := variantImage(src, t.Kind, t.Variant)
			if img == nil {
				continue
			}
			c.DrawImage(img, float64(x*m.tileSize-off.X), float64(y*m.tileSize-off.Y), false)
		}
	}
}

func variantImage(src ImageSource, k Kind, variant int) image.Image {
	variants := src.TileImages(k)
	if variant < 0 || variant >= len(variants) {
		return nil
	}
	return variants[variant]
}
