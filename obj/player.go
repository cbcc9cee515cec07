package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/common"
	"github.com/milk9111/obstaclecourse/component"
	"github.com/milk9111/obstaclecourse/config"
)

// PlayerState is the coarse gameplay state of the player.
type PlayerState int

const (
	StateAlive PlayerState = iota
	StateDying
	StateWinning
)

func (s PlayerState) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateDying:
		return "dying"
	case StateWinning:
		return "winning"
	default:
		return "unknown"
	}
}

// Player layers the alive/dying/winning state machine over a KinematicBody.
// Once dying or winning the body is frozen; only the animation and the
// terminal timer advance until the timer reaches its threshold.
type Player struct {
	Body *KinematicBody

	AirTime    int
	CanJump    bool
	DeathTimer int
	WinTimer   int

	dead        bool
	won         bool
	deathPlayed bool
	winPlayed   bool

	spec    config.PlayerSpec
	physics config.PhysicsSpec
}

func NewPlayer(spec config.PlayerSpec, physics config.PhysicsSpec, anims AnimationSource) *Player {
	body := NewKinematicBody(
		component.EntityPlayer,
		cp.Vector{X: spec.SpawnX, Y: spec.SpawnY},
		cp.Vector{X: spec.Width, Y: spec.Height},
		physics,
		anims,
	)
	body.AnimOffset = cp.Vector{X: spec.AnimOffsetX, Y: spec.AnimOffsetY}
	return &Player{
		Body:    body,
		CanJump: true,
		spec:    spec,
		physics: physics,
	}
}

// State reports the current state. A player that touched a hazard and a goal
// on the same tick reports dying.
func (p *Player) State() PlayerState {
	switch {
	case p.dead:
		return StateDying
	case p.won:
		return StateWinning
	default:
		return StateAlive
	}
}

// DeathConfirmed latches once the death timer reaches its threshold.
func (p *Player) DeathConfirmed() bool { return p.deathPlayed }

// WinConfirmed latches once the win timer reaches its threshold.
func (p *Player) WinConfirmed() bool { return p.winPlayed }

func (p *Player) Rect() common.Rect { return p.Body.Rect() }

// Jump applies the jump impulse if the player has touched the ground since
// the last jump.
func (p *Player) Jump() bool {
	if !p.CanJump {
		return false
	}
	p.Body.Velocity.Y = p.physics.JumpVelocity
	p.CanJump = false
	return true
}

func (p *Player) Update(geom Geometry, intent cp.Vector) {
	if !p.dead && !p.won {
		p.updateAlive(geom, intent)
	} else {
		p.Body.Animation().Update()
		if p.dead {
			p.DeathTimer++
		}
		if p.won {
			p.WinTimer++
		}
	}

	if p.DeathTimer >= p.spec.TerminalTimerThreshold {
		p.deathPlayed = true
	}
	if p.WinTimer >= p.spec.TerminalTimerThreshold {
		p.winPlayed = true
	}
}

func (p *Player) updateAlive(geom Geometry, intent cp.Vector) {
	p.Body.Update(geom, intent)

	if p.Body.Collisions.Down {
		p.AirTime = 0
		p.CanJump = true
	} else {
		p.AirTime++
	}

	switch {
	case p.AirTime > p.spec.JumpAirTime:
		p.Body.SetAction(component.ActionJump)
	case intent.X != 0:
		p.Body.SetAction(component.ActionRun)
	default:
		p.Body.SetAction(component.ActionIdle)
	}

	if p.Body.Pos.Y > p.spec.FallLimit {
		p.die()
	}

	_, hazard, goal := geom.CollisionGeometryAround(p.Body.Pos)
	if hazard && !p.deathPlayed {
		p.die()
	}
	if goal && !p.winPlayed {
		p.won = true
		p.WinTimer = p.spec.TerminalTimerStart
		p.Body.SetAction(component.ActionWinner)
	}
}

func (p *Player) die() {
	p.dead = true
	p.DeathTimer = p.spec.TerminalTimerStart
	p.Body.SetAction(component.ActionDeath)
}

// Reset puts the player back on the spawn point, alive and idle, with a fresh
// idle animation. Facing is kept.
func (p *Player) Reset() {
	p.Body.Pos = cp.Vector{X: p.spec.SpawnX, Y: p.spec.SpawnY}
	p.Body.Velocity = cp.Vector{}
	p.Body.Collisions = Collisions{}
	p.Body.SetAction(component.ActionNone)
	p.Body.SetAction(component.ActionIdle)

	p.AirTime = 0
	p.CanJump = true
	p.DeathTimer = 0
	p.WinTimer = 0
	p.dead = false
	p.won = false
	p.deathPlayed = false
	p.winPlayed = false
}

func (p *Player) Draw(c common.Canvas, off common.Offset) {
	p.Body.Draw(c, off)
}
