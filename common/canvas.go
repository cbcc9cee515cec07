package common

import "image"

// Canvas is the drawing target handed to Draw methods. The game adapts an
// ebiten screen to it; tests record calls.
type Canvas interface {
	Size() (w, h int)
	DrawImage(img image.Image, x, y float64, flipX bool)
}

// Offset is the camera offset in whole pixels.
type Offset struct {
	X, Y int
}
