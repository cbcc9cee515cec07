package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/milk9111/obstaclecourse/component"
	"github.com/milk9111/obstaclecourse/config"
	"github.com/milk9111/obstaclecourse/tilemap"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	spriteW = 20
	spriteH = 29
	bannerW = 280
	bannerH = 100
)

// edges lists which sides of an autotiled variant face open space, in the
// order top, right, bottom, left.
var edges = [9][4]bool{
	{true, false, false, true},
	{true, false, false, false},
	{true, true, false, false},
	{false, true, false, false},
	{false, true, true, false},
	{false, false, true, false},
	{false, false, true, true},
	{false, false, false, true},
	{false, false, false, false},
}

type tileStyle struct {
	fill     color.RGBA
	edge     color.RGBA
	variants int
}

var tileStyles = map[tilemap.Kind]tileStyle{
	tilemap.Stone:      {colornames.Slategray, colornames.Lightslategray, len(edges)},
	tilemap.Grass:      {colornames.Saddlebrown, colornames.Forestgreen, len(edges)},
	tilemap.Decor:      {colornames.Darkolivegreen, colornames.Olivedrab, 4},
	tilemap.LargeDecor: {colornames.Darkgreen, colornames.Seagreen, 3},
	tilemap.Platforms:  {colornames.Peru, colornames.Burlywood, 1},
	tilemap.Bridge:     {colornames.Sienna, colornames.Tan, 1},
	tilemap.Lava:       {colornames.Orangered, colornames.Gold, 1},
	tilemap.Trophy:     {colornames.Goldenrod, colornames.Yellow, 1},
}

// Placeholders generates a complete Registry of flat-colored art so the game
// runs without an asset directory.
func Placeholders(tuning *config.Tuning) *Registry {
	r := NewRegistry()
	ts := tilemap.DefaultTileSize

	for _, k := range tilemap.Kinds {
		style := tileStyles[k]
		imgs := make([]image.Image, style.variants)
		for v := range imgs {
			switch k {
			case tilemap.Decor:
				imgs[v] = decorImage(ts, ts, v, style)
			case tilemap.LargeDecor:
				imgs[v] = decorImage(2*ts, 2*ts, v, style)
			case tilemap.Trophy:
				imgs[v] = trophyImage(ts, style)
			default:
				imgs[v] = tileImage(ts, edges[v%len(edges)], style)
			}
		}
		r.SetTiles(k, imgs)
	}

	for _, a := range component.Actions {
		spec := tuning.Animation(a.String())
		key := component.AnimKey{Entity: component.EntityPlayer, Action: a}
		r.SetAnimation(key, component.NewAnimation(playerFrames(a), spec.Duration, spec.Loop))
	}

	w, h := tuning.Display.Width, tuning.Display.Height
	r.Background = backgroundImage(w, h)
	r.GameOver = bannerImage("GAME OVER", colornames.Darkred, colornames.Mistyrose)
	r.GameWinner = bannerImage("YOU WIN!", colornames.Darkgoldenrod, colornames.Lightyellow)
	return r
}

func fill(img draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

func tileImage(size int, open [4]bool, style tileStyle) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fill(img, img.Bounds(), style.fill)
	if open[0] {
		fill(img, image.Rect(0, 0, size, 3), style.edge)
	}
	if open[1] {
		fill(img, image.Rect(size-2, 0, size, size), style.edge)
	}
	if open[2] {
		fill(img, image.Rect(0, size-2, size, size), style.edge)
	}
	if open[3] {
		fill(img, image.Rect(0, 0, 2, size), style.edge)
	}
	return img
}

// decorImage draws a bush of varying height standing on the bottom edge.
func decorImage(w, h, variant int, style tileStyle) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	top := h / (variant + 2)
	fill(img, image.Rect(w/4, top, 3*w/4, h), style.fill)
	fill(img, image.Rect(w/4+1, top, 3*w/4-1, top+2), style.edge)
	return img
}

func trophyImage(size int, style tileStyle) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fill(img, image.Rect(3, 2, size-3, size/2), style.fill)
	fill(img, image.Rect(size/2-1, size/2, size/2+1, size-4), style.fill)
	fill(img, image.Rect(4, size-4, size-4, size-1), style.edge)
	return img
}

// playerFrames draws a ninja whose feet rest on the bottom of the sprite so
// the hitbox lines up with the animation offset.
func playerFrames(a component.Action) []image.Image {
	var frames []image.Image
	switch a {
	case component.ActionIdle:
		frames = append(frames, ninja(0, 0, false), ninja(1, 0, false))
	case component.ActionRun:
		for step := 0; step < 4; step++ {
			frames = append(frames, ninja(step%2, step-1, false))
		}
	case component.ActionJump:
		frames = append(frames, ninja(-1, 2, false))
	case component.ActionDeath:
		for i := 0; i < 3; i++ {
			frames = append(frames, fallen(i))
		}
	case component.ActionWinner:
		frames = append(frames, ninja(0, 0, true), ninja(-2, 0, true))
	}
	return frames
}

func ninja(bob, stride int, arms bool) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, spriteW, spriteH))
	body := colornames.Midnightblue
	top := 14 + bob
	fill(img, image.Rect(6, top, 14, top+6), colornames.Peachpuff)
	fill(img, image.Rect(6, top+1, 14, top+2), colornames.Red)
	fill(img, image.Rect(6, top+6, 14, spriteH-4), body)
	fill(img, image.Rect(6+stride, spriteH-4, 9+stride, spriteH), body)
	fill(img, image.Rect(11-stride, spriteH-4, 14-stride, spriteH), body)
	if arms {
		fill(img, image.Rect(3, top-4, 5, top+8), body)
		fill(img, image.Rect(15, top-4, 17, top+8), body)
	}
	return img
}

func fallen(step int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, spriteW, spriteH))
	h := 15 - 5*step
	fill(img, image.Rect(4, spriteH-h, 16, spriteH), colornames.Midnightblue)
	fill(img, image.Rect(4, spriteH-h, 16, spriteH-h+2), colornames.Crimson)
	return img
}

func backgroundImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	top, bottom := colornames.Skyblue, colornames.Lightsteelblue
	for y := 0; y < h; y++ {
		t := float64(y) / float64(max(1, h-1))
		c := color.RGBA{
			R: mix(top.R, bottom.R, t),
			G: mix(top.G, bottom.G, t),
			B: mix(top.B, bottom.B, t),
			A: 255,
		}
		fill(img, image.Rect(0, y, w, y+1), c)
	}
	return img
}

func mix(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func bannerImage(label string, bg, fg color.RGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, bannerW, bannerH))
	fill(img, img.Bounds(), bg)
	fill(img, image.Rect(4, 4, bannerW-4, bannerH-4), colornames.Black)
	fill(img, image.Rect(6, 6, bannerW-6, bannerH-6), bg)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}
	width := d.MeasureString(label).Ceil()
	d.Dot = fixed.P((bannerW-width)/2, bannerH/2+face.Ascent/2)
	d.DrawString(label)
	return img
}
