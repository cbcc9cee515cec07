package tilemap

import (
	"errors"
	"fmt"
)

var ErrUnknownKind = errors.New("tilemap: unknown tile type")

// Kind is a tile type. Behavior is attached through the metadata table below
// rather than through set membership checks at call sites.
type Kind int

const (
	KindInvalid Kind = iota
	Stone
	Grass
	Decor
	LargeDecor
	Platforms
	Bridge
	Lava
	Trophy
)

type kindInfo struct {
	name string
	// physical tiles take part in collision queries. Hazard and goal tiles are
	// physical but never produce solid rectangles.
	physical bool
	hazard   bool
	goal     bool
	autotile bool
}

var kindTable = [...]kindInfo{
	KindInvalid: {name: ""},
	Stone:       {name: "stone", physical: true, autotile: true},
	Grass:       {name: "grass", physical: true},
	Decor:       {name: "decor"},
	LargeDecor:  {name: "large_decor"},
	Platforms:   {name: "platforms", physical: true},
	Bridge:      {name: "bridge", physical: true},
	Lava:        {name: "lava", physical: true, hazard: true},
	Trophy:      {name: "trophy", physical: true, goal: true},
}

// Kinds lists every valid tile kind in declaration order.
var Kinds = []Kind{Stone, Grass, Decor, LargeDecor, Platforms, Bridge, Lava, Trophy}

func (k Kind) info() kindInfo {
	if k <= KindInvalid || int(k) >= len(kindTable) {
		return kindInfo{}
	}
	return kindTable[k]
}

func (k Kind) Valid() bool     { return k.info().name != "" }
func (k Kind) Physical() bool  { return k.info().physical }
func (k Kind) Hazard() bool    { return k.info().hazard }
func (k Kind) Goal() bool      { return k.info().goal }
func (k Kind) Autotiled() bool { return k.info().autotile }

// Solid reports whether tiles of this kind block movement.
func (k Kind) Solid() bool {
	i := k.info()
	return i.physical && !i.hazard && !i.goal
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return k.info().name
}

// ParseKind maps a level file type name to its Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if kindTable[k].name == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, int(k))
	}
	return []byte(k.info().name), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
