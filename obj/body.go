package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/common"
	"github.com/milk9111/obstaclecourse/component"
	"github.com/milk9111/obstaclecourse/config"
)

// Geometry is the tile query bodies collide against.
type Geometry interface {
	CollisionGeometryAround(pos cp.Vector) (rects []common.Rect, hazard, goal bool)
}

// AnimationSource hands out animation templates. Bodies never play a
// template directly; they play clones.
type AnimationSource interface {
	Animation(key component.AnimKey) *component.Animation
}

// Collisions records which sides of a body hit solid tiles during the last
// Update.
type Collisions struct {
	Up, Down, Left, Right bool
}

// KinematicBody is an axis-aligned box moved by intent plus velocity and
// pushed out of solid tiles one axis at a time.
type KinematicBody struct {
	Entity     component.EntityType
	Pos        cp.Vector // top-left of the hitbox
	Size       cp.Vector
	Velocity   cp.Vector
	Collisions Collisions
	Flip       bool
	// AnimOffset shifts the sprite relative to the hitbox when drawing.
	AnimOffset cp.Vector

	physics config.PhysicsSpec
	anims   AnimationSource
	action  component.Action
	anim    *component.Animation
}

func NewKinematicBody(entity component.EntityType, pos, size cp.Vector, physics config.PhysicsSpec, anims AnimationSource) *KinematicBody {
	b := &KinematicBody{
		Entity:  entity,
		Pos:     pos,
		Size:    size,
		physics: physics,
		anims:   anims,
	}
	b.SetAction(component.ActionIdle)
	return b
}

// Rect returns the hitbox.
func (b *KinematicBody) Rect() common.Rect {
	return common.Rect{X: b.Pos.X, Y: b.Pos.Y, Width: b.Size.X, Height: b.Size.Y}
}

func (b *KinematicBody) Action() component.Action        { return b.action }
func (b *KinematicBody) Animation() *component.Animation { return b.anim }

// SetAction switches to the named animation, restarting it from its first
// frame. Setting the current action again does nothing.
func (b *KinematicBody) SetAction(a component.Action) {
	if a == b.action {
		return
	}
	b.action = a
	b.anim = nil
	if b.anims == nil {
		return
	}
	if tmpl := b.anims.Animation(component.AnimKey{Entity: b.Entity, Action: a}); tmpl != nil {
		b.anim = tmpl.Clone()
	}
}

// Update moves the body by intent plus velocity. The X axis resolves first,
// then Y. Both passes use the rectangles queried after the X move; they are
// not refreshed before the Y pass.
func (b *KinematicBody) Update(geom Geometry, intent cp.Vector) {
	b.Collisions = Collisions{}
	move := intent.Add(b.Velocity)

	b.Pos.X += move.X
	r := b.Rect()
	rects, _, _ := geom.CollisionGeometryAround(b.Pos)
	for _, tile := range rects {
		if !r.Intersects(tile) {
			continue
		}
		if move.X > 0 {
			r.X = tile.Left() - r.Width
			b.Collisions.Right = true
		}
		if move.X < 0 {
			r.X = tile.Right()
			b.Collisions.Left = true
		}
		b.Pos.X = r.X
	}

	b.Pos.Y += move.Y
	r = b.Rect()
	for _, tile := range rects {
		if !r.Intersects(tile) {
			continue
		}
		if move.Y > 0 {
			r.Y = tile.Top() - r.Height
			b.Collisions.Down = true
		}
		if move.Y < 0 {
			r.Y = tile.Bottom()
			b.Collisions.Up = true
		}
		b.Pos.Y = r.Y
	}

	if intent.X > 0 {
		b.Flip = false
	}
	if intent.X < 0 {
		b.Flip = true
	}

	b.Velocity.Y = min(b.physics.MaxFallSpeed, b.Velocity.Y+b.physics.Gravity)
	if b.Collisions.Down || b.Collisions.Up {
		b.Velocity.Y = 0
	}

	b.anim.Update()
}

// Draw renders the current animation frame, mirrored when the body faces left.
func (b *KinematicBody) Draw(c common.Canvas, off common.Offset) {
	img := b.anim.Image()
	if img == nil {
		return
	}
	x := b.Pos.X - float64(off.X) + b.AnimOffset.X
	y := b.Pos.Y - float64(off.Y) + b.AnimOffset.Y
	c.DrawImage(img, x, y, b.Flip)
}
