package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/milk9111/obstaclecourse/component"
	"github.com/milk9111/obstaclecourse/config"
	"github.com/milk9111/obstaclecourse/tilemap"
)

// LoadDir loads an asset directory from disk. See Load for the layout.
func LoadDir(dir string, tuning *config.Tuning) (*Registry, error) {
	return Load(os.DirFS(dir), tuning)
}

// Load builds a validated Registry from fsys laid out as
//
//	tiles/<kind>/*.png
//	entities/<entity>/<action>/*.png
//	background.png
//	game_over.png
//	game_winner.png
//
// Images within a directory are ordered by file name. Pure black pixels
// become transparent.
func Load(fsys fs.FS, tuning *config.Tuning) (*Registry, error) {
	r := NewRegistry()

	for _, k := range tilemap.Kinds {
		imgs, err := loadImages(fsys, path.Join("tiles", k.String()))
		if err != nil {
			return nil, err
		}
		r.SetTiles(k, imgs)
	}

	for _, e := range component.Entities {
		for _, a := range component.Actions {
			imgs, err := loadImages(fsys, path.Join("entities", e.String(), a.String()))
			if err != nil {
				return nil, err
			}
			spec := tuning.Animation(a.String())
			r.SetAnimation(component.AnimKey{Entity: e, Action: a}, component.NewAnimation(imgs, spec.Duration, spec.Loop))
		}
	}

	var err error
	if r.Background, err = loadImage(fsys, "background.png"); err != nil {
		return nil, err
	}
	if r.GameOver, err = loadImage(fsys, "game_over.png"); err != nil {
		return nil, err
	}
	if r.GameWinner, err = loadImage(fsys, "game_winner.png"); err != nil {
		return nil, err
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// loadImages decodes every image in dir. A missing directory yields no
// images; Validate reports it.
func loadImages(fsys fs.FS, dir string) ([]image.Image, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("assets: read %s: %w", dir, err)
	}
	var imgs []image.Image
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		img, err := loadImage(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

func loadImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return ColorKey(img), nil
}

func isImageFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// ColorKey returns a copy of img where pure black pixels are transparent.
func ColorKey(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.R == 0 && c.G == 0 && c.B == 0 {
				c.A = 0
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
