package world

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/oomph-ac/physim/simulation"
	"github.com/zeebo/xxh3"
)

const (
	obstacleSpread = 160
	itemSpread     = 120

	defaultPotionValue = 25
)

// Layout describes the default scenery a simulation is populated with: a number of box shaped obstacles and
// health potions scattered around the origin. The same seed always produces the same scenery.
type Layout struct {
	Seed      uint64
	Obstacles int
	Items     int
}

// DefaultLayout is the scenery the game client renders by default.
func DefaultLayout() Layout {
	return Layout{Obstacles: 10, Items: 5}
}

// Populate adds the obstacles and items of l to sim.
func Populate(sim *simulation.Simulation, l Layout) error {
	for i := range l.Obstacles {
		x := l.offset(fmt.Sprintf("obstacle_%d_x", i), obstacleSpread)
		z := l.offset(fmt.Sprintf("obstacle_%d_z", i), obstacleSpread)
		height := float32(l.hash(fmt.Sprintf("obstacle_%d_h", i))%3 + 1)

		id := fmt.Sprintf("obstacle_%d", i)
		bb := cube.Box(x-1, 0, z-1, x+1, height, z+1)
		if _, err := sim.AddObstacle(id, simulation.TypeObstacle, bb); err != nil {
			return fmt.Errorf("add %s: %w", id, err)
		}
	}

	for i := range l.Items {
		x := l.offset(fmt.Sprintf("item_%d_x", i), itemSpread)
		z := l.offset(fmt.Sprintf("item_%d_z", i), itemSpread)

		data := orderedmap.NewOrderedMap[string, any]()
		data.Set("value", defaultPotionValue)

		id := fmt.Sprintf("item_%d", i)
		if _, err := sim.AddInteractable(id, mgl32.Vec3{x, game.InteractableHalfExtent, z}, simulation.InteractableOptions{
			Type:  simulation.TypeHealthPotion,
			Range: game.DefaultInteractionRange,
			Data:  data,
		}); err != nil {
			return fmt.Errorf("add %s: %w", id, err)
		}
	}
	return nil
}

func (l Layout) hash(key string) uint64 {
	return xxh3.HashStringSeed(key, l.Seed)
}

// offset maps the hash of key to a whole number in [-spread/2, spread/2).
func (l Layout) offset(key string, spread uint64) float32 {
	return float32(int64(l.hash(key)%spread) - int64(spread/2))
}
