package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 16, Height: 16}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 8, Y: 8, Width: 16, Height: 16}, true},
		{"contained", Rect{X: 4, Y: 4, Width: 2, Height: 2}, true},
		{"touch_right_edge", Rect{X: 16, Y: 0, Width: 16, Height: 16}, false},
		{"touch_bottom_edge", Rect{X: 0, Y: 16, Width: 16, Height: 16}, false},
		{"apart", Rect{X: 40, Y: 40, Width: 4, Height: 4}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FloorDiv(c.a, c.b), "FloorDiv(%d, %d)", c.a, c.b)
	}
}

func TestCell(t *testing.T) {
	assert.Equal(t, 3, Cell(50, 16))
	assert.Equal(t, -1, Cell(-0.5, 16))
	assert.Equal(t, 0, Cell(15.99, 16))
}
