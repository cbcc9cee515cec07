package levels

import (
	"path/filepath"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/obstaclecourse/config"
	"github.com/milk9111/obstaclecourse/obj"
	"github.com/milk9111/obstaclecourse/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevel(t *testing.T) {
	m, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 16, m.TileSize())
	assert.NotEmpty(t, m.Offgrid())

	counts := map[tilemap.Kind]int{}
	for _, tile := range m.Tiles() {
		counts[tile.Kind]++
	}
	assert.Equal(t, 1, counts[tilemap.Trophy])
	assert.NotZero(t, counts[tilemap.Lava])
	assert.NotZero(t, counts[tilemap.Stone])

	// shipped already autotiled
	assert.Zero(t, m.Autotile())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "levels: load")

	_, err = LoadLevelFromFS("nope.json")
	assert.ErrorContains(t, err, "levels: open nope.json")
}

func TestLoadFromDisk(t *testing.T) {
	m, err := Load("")
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "copy.json")
	require.NoError(t, m.SaveFile(p))

	again, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, m.Tiles(), again.Tiles())
}

func TestDefaultLevelPlaythrough(t *testing.T) {
	tuning := config.Default()

	t.Run("lands on the ground", func(t *testing.T) {
		m, err := Load("")
		require.NoError(t, err)
		p := obj.NewPlayer(tuning.Player, tuning.Physics, nil)
		for i := 0; i < 200; i++ {
			p.Update(m, cp.Vector{})
		}
		assert.Equal(t, obj.StateAlive, p.State())
		assert.Equal(t, 96.0, p.Rect().Bottom())
	})

	t.Run("walks into the first lava pit", func(t *testing.T) {
		m, err := Load("")
		require.NoError(t, err)
		p := obj.NewPlayer(tuning.Player, tuning.Physics, nil)
		for i := 0; i < 600 && p.State() == obj.StateAlive; i++ {
			p.Update(m, cp.Vector{X: 1})
		}
		require.Equal(t, obj.StateDying, p.State())
		assert.Greater(t, p.Rect().Left(), 224.0)
		assert.Less(t, p.Rect().Right(), 272.0)
	})
}
