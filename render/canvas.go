package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Cache holds the GPU copy of every decoded image drawn so far.
type Cache struct {
	images map[image.Image]*ebiten.Image
}

func NewCache() *Cache {
	return &Cache{images: make(map[image.Image]*ebiten.Image)}
}

// Image returns the GPU copy of img, uploading it on first use.
func (c *Cache) Image(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}

// Canvas draws decoded images onto an ebiten target.
type Canvas struct {
	dst   *ebiten.Image
	cache *Cache
}

func NewCanvas(dst *ebiten.Image, cache *Cache) *Canvas {
	return &Canvas{dst: dst, cache: cache}
}

func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// DrawImage draws img with its top-left corner at (x, y). A flipped image is
// mirrored in place, so it still covers the same rectangle.
func (c *Canvas) DrawImage(img image.Image, x, y float64, flipX bool) {
	src := c.cache.Image(img)
	if src == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(src, op)
}
