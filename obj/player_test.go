package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/common"
	"github.com/milk9111/obstaclecourse/component"
	"github.com/milk9111/obstaclecourse/config"
	"github.com/milk9111/obstaclecourse/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer() *Player {
	tuning := config.Default()
	return NewPlayer(tuning.Player, tuning.Physics, testAnims())
}

// floorMap places a stone row directly under the spawn point's neighborhood.
func floorMap(kinds ...tilemap.Kind) *tilemap.Tilemap {
	m := tilemap.New(16)
	for x := 0; x < 8; x++ {
		m.Set(tilemap.Tile{Kind: tilemap.Stone, Pos: tilemap.GridPos{X: x, Y: 4}})
	}
	for i, k := range kinds {
		m.Set(tilemap.Tile{Kind: k, Pos: tilemap.GridPos{X: 2 + i, Y: 3}})
	}
	return m
}

func TestNewPlayer(t *testing.T) {
	p := newPlayer()
	assert.Equal(t, common.Rect{X: 50, Y: 50, Width: 8, Height: 15}, p.Rect())
	assert.Equal(t, cp.Vector{X: -6, Y: -14}, p.Body.AnimOffset)
	assert.Equal(t, StateAlive, p.State())
	assert.Equal(t, component.ActionIdle, p.Body.Action())
	assert.True(t, p.CanJump)
	assert.False(t, p.DeathConfirmed())
	assert.False(t, p.WinConfirmed())
}

func TestPlayerJump(t *testing.T) {
	p := newPlayer()
	require.True(t, p.Jump())
	assert.Equal(t, -3.0, p.Body.Velocity.Y)
	assert.False(t, p.CanJump)

	p.Body.Velocity.Y = 1
	assert.False(t, p.Jump())
	assert.Equal(t, 1.0, p.Body.Velocity.Y)
}

func TestPlayerRegainsJumpOnLanding(t *testing.T) {
	p := newPlayer()
	p.Body.Pos.Y = 49
	p.CanJump = false
	m := floorMap()

	for i := 0; i < 2; i++ {
		p.Update(m, cp.Vector{})
	}
	assert.True(t, p.CanJump)
	assert.Zero(t, p.AirTime)
	assert.Equal(t, 64.0, p.Rect().Bottom())
}

func TestPlayerActionPriority(t *testing.T) {
	t.Run("idle on the ground", func(t *testing.T) {
		p := newPlayer()
		p.Body.Pos.Y = 49
		m := floorMap()
		for i := 0; i < 20; i++ {
			p.Update(m, cp.Vector{})
			assert.Equal(t, component.ActionIdle, p.Body.Action(), "tick %d", i+1)
		}
	})

	t.Run("run on the ground", func(t *testing.T) {
		p := newPlayer()
		p.Body.Pos.Y = 49
		m := floorMap()
		for i := 0; i < 20; i++ {
			p.Update(m, cp.Vector{X: 1})
			assert.Equal(t, component.ActionRun, p.Body.Action(), "tick %d", i+1)
		}
		assert.Equal(t, 70.0, p.Body.Pos.X)
	})

	t.Run("jump after leaving the ground", func(t *testing.T) {
		p := newPlayer()
		m := tilemap.New(16)
		for i := 1; i <= 4; i++ {
			p.Update(m, cp.Vector{X: 1})
			assert.Equal(t, i, p.AirTime)
			assert.Equal(t, component.ActionRun, p.Body.Action())
		}
		p.Update(m, cp.Vector{X: 1})
		assert.Equal(t, component.ActionJump, p.Body.Action())
	})
}

func TestPlayerFallsOutOfWorld(t *testing.T) {
	p := newPlayer()
	m := tilemap.New(16)
	p.Body.Pos.Y = 478
	p.Body.Velocity.Y = 5

	p.Update(m, cp.Vector{})
	require.Equal(t, StateDying, p.State())
	assert.Equal(t, 30, p.DeathTimer)
	assert.Equal(t, component.ActionDeath, p.Body.Action())

	frozen := p.Body.Pos
	for i := 0; i < 29; i++ {
		p.Update(m, cp.Vector{X: 1})
	}
	assert.Equal(t, 59, p.DeathTimer)
	assert.False(t, p.DeathConfirmed())
	assert.Equal(t, 29%10, p.Body.Animation().Frame())

	p.Update(m, cp.Vector{X: 1})
	assert.Equal(t, 60, p.DeathTimer)
	assert.True(t, p.DeathConfirmed())

	for i := 0; i < 10; i++ {
		p.Update(m, cp.Vector{X: 1})
	}
	assert.True(t, p.DeathConfirmed())
	assert.Equal(t, StateDying, p.State())
	assert.Equal(t, frozen, p.Body.Pos)
}

func TestPlayerTerminalTiles(t *testing.T) {
	cases := []struct {
		name   string
		kinds  []tilemap.Kind
		state  PlayerState
		action component.Action
	}{
		{"lava", []tilemap.Kind{tilemap.Lava}, StateDying, component.ActionDeath},
		{"trophy", []tilemap.Kind{tilemap.Trophy}, StateWinning, component.ActionWinner},
		{"both", []tilemap.Kind{tilemap.Lava, tilemap.Trophy}, StateDying, component.ActionWinner},
		{"decor", []tilemap.Kind{tilemap.Decor}, StateAlive, component.ActionIdle},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newPlayer()
			p.Body.Pos.Y = 49
			p.Update(floorMap(c.kinds...), cp.Vector{})
			assert.Equal(t, c.state, p.State())
			assert.Equal(t, c.action, p.Body.Action())
		})
	}
}

func TestPlayerWinLatch(t *testing.T) {
	p := newPlayer()
	p.Body.Pos.Y = 49
	m := floorMap(tilemap.Trophy)

	p.Update(m, cp.Vector{})
	require.Equal(t, StateWinning, p.State())
	assert.Equal(t, 30, p.WinTimer)

	frozen := p.Body.Pos
	for i := 0; i < 30; i++ {
		assert.False(t, p.WinConfirmed(), "tick %d", i)
		p.Update(m, cp.Vector{X: -1})
	}
	assert.True(t, p.WinConfirmed())
	assert.False(t, p.DeathConfirmed())
	assert.Equal(t, frozen, p.Body.Pos)
	assert.False(t, p.Body.Flip)
}

func TestPlayerReset(t *testing.T) {
	p := newPlayer()
	m := tilemap.New(16)
	p.Update(m, cp.Vector{X: -1})
	p.Body.Pos.Y = 478
	p.Body.Velocity.Y = 5
	for i := 0; i < 40; i++ {
		p.Update(m, cp.Vector{})
	}
	require.True(t, p.DeathConfirmed())

	p.Reset()
	assert.Equal(t, StateAlive, p.State())
	assert.Equal(t, cp.Vector{X: 50, Y: 50}, p.Body.Pos)
	assert.Equal(t, cp.Vector{}, p.Body.Velocity)
	assert.Equal(t, component.ActionIdle, p.Body.Action())
	assert.Zero(t, p.Body.Animation().Frame())
	assert.Zero(t, p.DeathTimer)
	assert.Zero(t, p.WinTimer)
	assert.Zero(t, p.AirTime)
	assert.True(t, p.CanJump)
	assert.False(t, p.DeathConfirmed())
	assert.False(t, p.WinConfirmed())
	assert.True(t, p.Body.Flip)
}

func TestPlayerResetRestartsIdle(t *testing.T) {
	p := newPlayer()
	p.Body.Pos.Y = 49
	m := floorMap()
	for i := 0; i < 7; i++ {
		p.Update(m, cp.Vector{})
	}
	require.Equal(t, component.ActionIdle, p.Body.Action())
	require.NotZero(t, p.Body.Animation().Frame())

	p.Reset()
	assert.Zero(t, p.Body.Animation().Frame())
}

func TestPlayerDraw(t *testing.T) {
	p := newPlayer()
	c := &recordingCanvas{}
	p.Draw(c, common.Offset{X: -4, Y: -2})
	require.Len(t, c.calls, 1)
	assert.Equal(t, 48.0, c.calls[0].x)
	assert.Equal(t, 38.0, c.calls[0].y)
	assert.False(t, c.calls[0].flip)
}

func TestPlayerStateString(t *testing.T) {
	assert.Equal(t, "alive", StateAlive.String())
	assert.Equal(t, "dying", StateDying.String())
	assert.Equal(t, "winning", StateWinning.String())
	assert.Equal(t, "unknown", PlayerState(9).String())
}
