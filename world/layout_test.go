package world

import (
	"fmt"
	"testing"

	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populated(t *testing.T, l Layout) *simulation.Simulation {
	t.Helper()
	sim, err := simulation.New(simulation.DefaultConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, Populate(sim, l))
	return sim
}

func TestPopulateDefaultLayout(t *testing.T) {
	sim := populated(t, DefaultLayout())

	obstacles := sim.Obstacles()
	require.Len(t, obstacles, 10)
	for i, obj := range obstacles {
		assert.Equal(t, fmt.Sprintf("obstacle_%d", i), obj.ID)
		assert.Equal(t, simulation.TypeObstacle, obj.Type)

		min, max := obj.BBox.Min(), obj.BBox.Max()
		assert.Equal(t, float32(0), min.Y())
		assert.Contains(t, []float32{1, 2, 3}, max.Y())
		assert.Equal(t, float32(2), max.X()-min.X())
		assert.Equal(t, float32(2), max.Z()-min.Z())
		assert.GreaterOrEqual(t, game.Center(obj.BBox).X(), float32(-80))
		assert.Less(t, game.Center(obj.BBox).X(), float32(80))
	}

	items := sim.Interactables()
	require.Len(t, items, 5)
	for _, item := range items {
		assert.Equal(t, simulation.TypeHealthPotion, item.Type)
		assert.Equal(t, game.DefaultInteractionRange, item.Range)
		assert.Equal(t, float32(0.5), item.Position.Y())
		assert.GreaterOrEqual(t, item.Position.X(), float32(-60))
		assert.Less(t, item.Position.Z(), float32(60))

		value, ok := item.Data.Get("value")
		require.True(t, ok)
		assert.Equal(t, 25, value)
	}
}

func TestPopulateIsDeterministic(t *testing.T) {
	l := Layout{Seed: 42, Obstacles: 8, Items: 4}
	a, b := populated(t, l), populated(t, l)

	for i, obj := range a.Obstacles() {
		assert.Equal(t, obj.BBox, b.Obstacles()[i].BBox)
	}
	for i, item := range a.Interactables() {
		assert.Equal(t, item.Position, b.Interactables()[i].Position)
	}

	other := populated(t, Layout{Seed: 43, Obstacles: 8, Items: 4})
	same := true
	for i, obj := range a.Obstacles() {
		same = same && obj.BBox == other.Obstacles()[i].BBox
	}
	assert.False(t, same, "different seeds produced the same layout")
}

func TestPopulateEmptyLayout(t *testing.T) {
	sim := populated(t, Layout{})
	assert.Empty(t, sim.Obstacles())
	assert.Empty(t, sim.Interactables())
}
