package tilemap

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GridPos addresses a grid cell. In level files it is written as a "x;y" map
// key and as a [x, y] array inside the tile. Map keys are decoded as strings
// by Load, since encoding/json prefers UnmarshalJSON over UnmarshalText.
type GridPos struct {
	X, Y int
}

func (p GridPos) Add(dx, dy int) GridPos {
	return GridPos{X: p.X + dx, Y: p.Y + dy}
}

// Key returns the canonical "x;y" form.
func (p GridPos) Key() string {
	return strconv.Itoa(p.X) + ";" + strconv.Itoa(p.Y)
}

func (p GridPos) String() string { return p.Key() }

// ParseGridPos parses the canonical "x;y" form.
func ParseGridPos(key string) (GridPos, error) {
	xs, ys, ok := strings.Cut(key, ";")
	if !ok {
		return GridPos{}, fmt.Errorf("tilemap: invalid cell key %q", key)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return GridPos{}, fmt.Errorf("tilemap: invalid cell key %q: %w", key, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return GridPos{}, fmt.Errorf("tilemap: invalid cell key %q: %w", key, err)
	}
	return GridPos{X: x, Y: y}, nil
}

func (p GridPos) MarshalText() ([]byte, error) {
	return []byte(p.Key()), nil
}

func (p *GridPos) UnmarshalText(b []byte) error {
	parsed, err := ParseGridPos(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p GridPos) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON accepts integral floats as well ("[3.0, 4]"), since level
// files written by other tools are not strict about number formatting.
func (p *GridPos) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("tilemap: grid pos: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("tilemap: grid pos %v must have 2 elements", raw)
	}
	for _, v := range raw {
		if v != math.Trunc(v) {
			return fmt.Errorf("tilemap: grid pos %v is not integral", raw)
		}
		if math.Abs(v) > math.MaxInt32 {
			return fmt.Errorf("tilemap: grid pos %v out of range", raw)
		}
	}
	p.X, p.Y = int(raw[0]), int(raw[1])
	return nil
}

// Tile is a grid-aligned tile.
type Tile struct {
	Kind    Kind    `json:"type"`
	Pos     GridPos `json:"pos"`
	Variant int     `json:"variant"`
}

// OffgridTile is a freely placed decorative tile. Pos is in pixels.
type OffgridTile struct {
	Kind    Kind       `json:"type"`
	Pos     [2]float64 `json:"pos"`
	Variant int        `json:"variant"`
}
