package assets

import (
	"errors"
	"fmt"
	"image"

	"github.com/milk9111/obstaclecourse/component"
	"github.com/milk9111/obstaclecourse/tilemap"
)

var (
	ErrMissingAnimation = errors.New("assets: missing animation")
	ErrMissingTiles     = errors.New("assets: missing tile images")
	ErrMissingImage     = errors.New("assets: missing image")
)

// Registry holds every image the game draws. Tile images are keyed by kind
// and ordered by variant; animations are templates that bodies clone.
type Registry struct {
	Background image.Image
	GameOver   image.Image
	GameWinner image.Image

	tiles map[tilemap.Kind][]image.Image
	anims map[component.AnimKey]*component.Animation
}

func NewRegistry() *Registry {
	return &Registry{
		tiles: make(map[tilemap.Kind][]image.Image),
		anims: make(map[component.AnimKey]*component.Animation),
	}
}

func (r *Registry) SetTiles(k tilemap.Kind, imgs []image.Image) { r.tiles[k] = imgs }

func (r *Registry) SetAnimation(key component.AnimKey, anim *component.Animation) {
	r.anims[key] = anim
}

// TileImages returns the variant images of kind k, or nil.
func (r *Registry) TileImages(k tilemap.Kind) []image.Image { return r.tiles[k] }

// Animation returns the template for key, or nil.
func (r *Registry) Animation(key component.AnimKey) *component.Animation { return r.anims[key] }

// Validate checks that every tile kind has at least one image, every
// entity has an animation with frames for every action, and the three
// screen images are present.
func (r *Registry) Validate() error {
	for _, k := range tilemap.Kinds {
		if len(r.tiles[k]) == 0 {
			return fmt.Errorf("%w: %s", ErrMissingTiles, k)
		}
	}
	for _, e := range component.Entities {
		for _, a := range component.Actions {
			key := component.AnimKey{Entity: e, Action: a}
			if anim := r.anims[key]; anim == nil || anim.FrameCount() == 0 {
				return fmt.Errorf("%w: %s", ErrMissingAnimation, key)
			}
		}
	}
	screens := []struct {
		name string
		img  image.Image
	}{
		{"background", r.Background},
		{"game_over", r.GameOver},
		{"game_winner", r.GameWinner},
	}
	for _, s := range screens {
		if s.img == nil {
			return fmt.Errorf("%w: %s", ErrMissingImage, s.name)
		}
	}
	return nil
}
