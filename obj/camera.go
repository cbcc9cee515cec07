package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/common"
)

// Camera eases its scroll toward centering a target on the display. Each
// update covers 1/divisor of the remaining distance.
type Camera struct {
	scroll  cp.Vector
	viewW   float64
	viewH   float64
	divisor float64
}

func NewCamera(viewW, viewH int, divisor float64) *Camera {
	if divisor <= 0 {
		divisor = 1
	}
	return &Camera{viewW: float64(viewW), viewH: float64(viewH), divisor: divisor}
}

// Update moves the scroll toward centering target.
func (c *Camera) Update(target common.Rect) {
	t := 1 / c.divisor
	c.scroll.X = common.Lerp(c.scroll.X, target.CenterX()-c.viewW/2, t)
	c.scroll.Y = common.Lerp(c.scroll.Y, target.CenterY()-c.viewH/2, t)
}

// Offset returns the scroll truncated to whole pixels for drawing.
func (c *Camera) Offset() common.Offset {
	return common.Offset{X: int(c.scroll.X), Y: int(c.scroll.Y)}
}

func (c *Camera) Scroll() cp.Vector { return c.scroll }

// Reset returns the scroll to the origin.
func (c *Camera) Reset() {
	c.scroll = cp.Vector{}
}
