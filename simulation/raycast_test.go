package simulation

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaycastDown(t *testing.T) {
	sim := newSimulation(t, DefaultConfig())
	obj, err := sim.AddObstacle("crate", "", cube.Box(-1, 0, -1, 1, 2, 1))
	require.NoError(t, err)

	res := sim.Raycast(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10)
	require.True(t, res.Hit)
	assert.InDelta(t, 3, res.Distance, 1e-6)
	assert.InDelta(t, 2, res.Point.Y(), 1e-6)
	assert.Equal(t, game.Up, res.Normal)
	assert.Same(t, obj, res.Object)

	// The direction does not have to be normalized.
	res = sim.Raycast(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -7, 0}, 10)
	require.True(t, res.Hit)
	assert.InDelta(t, 3, res.Distance, 1e-6)
}

func TestRaycastMisses(t *testing.T) {
	sim := newSimulation(t, DefaultConfig())
	_, err := sim.AddObstacle("crate", "", cube.Box(-1, 0, -1, 1, 2, 1))
	require.NoError(t, err)

	tests := map[string]struct {
		origin, dir mgl32.Vec3
		maxDistance float32
	}{
		"zero direction":   {origin: mgl32.Vec3{0, 5, 0}, dir: mgl32.Vec3{}, maxDistance: 10},
		"too far":          {origin: mgl32.Vec3{0, 5, 0}, dir: mgl32.Vec3{0, -1, 0}, maxDistance: 2.5},
		"default too far":  {origin: mgl32.Vec3{0, 20, 0}, dir: mgl32.Vec3{0, -1, 0}},
		"parallel outside": {origin: mgl32.Vec3{-5, 3, 0}, dir: mgl32.Vec3{1, 0, 0}, maxDistance: 10},
		"pointing away":    {origin: mgl32.Vec3{0, 5, 0}, dir: mgl32.Vec3{0, 1, 0}, maxDistance: 10},
		"passing beside":   {origin: mgl32.Vec3{3, 5, 0}, dir: mgl32.Vec3{0, -1, 0}, maxDistance: 10},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := sim.Raycast(tc.origin, tc.dir, tc.maxDistance)
			assert.False(t, res.Hit)
			assert.Equal(t, RaycastResult{}, res)
		})
	}
}

func TestRaycastDistanceBoundary(t *testing.T) {
	sim := newSimulation(t, DefaultConfig())
	_, err := sim.AddObstacle("crate", "", cube.Box(-1, 0, -1, 1, 2, 1))
	require.NoError(t, err)

	res := sim.Raycast(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 3)
	assert.True(t, res.Hit)

	// A non-positive max distance falls back to the configured default of 10.
	res = sim.Raycast(mgl32.Vec3{0, 11, 0}, mgl32.Vec3{0, -1, 0}, 0)
	assert.True(t, res.Hit)
	assert.InDelta(t, 9, res.Distance, 1e-6)
}

func TestRaycastNearestObstacle(t *testing.T) {
	sim := newSimulation(t, DefaultConfig())
	far, err := sim.AddObstacle("far", "", cube.Box(5, 0, -1, 6, 2, 1))
	require.NoError(t, err)
	near, err := sim.AddObstacle("near", "", cube.Box(2, 0, -1, 3, 2, 1))
	require.NoError(t, err)
	twin, err := sim.AddObstacle("twin", "", cube.Box(2, 0, -1, 3, 2, 1))
	require.NoError(t, err)

	res := sim.Raycast(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, 10)
	require.True(t, res.Hit)
	assert.InDelta(t, 2, res.Distance, 1e-6)
	assert.Same(t, near, res.Object)
	assert.NotSame(t, twin, res.Object)
	assert.NotSame(t, far, res.Object)
}

func TestRaycastFaceNormals(t *testing.T) {
	conf := DefaultConfig()
	conf.FaceNormals = true
	sim := newSimulation(t, conf)
	_, err := sim.AddObstacle("crate", "", cube.Box(-1, 0, -1, 1, 2, 1))
	require.NoError(t, err)

	tests := map[string]struct {
		origin, dir, normal mgl32.Vec3
	}{
		"top":   {origin: mgl32.Vec3{0, 5, 0}, dir: mgl32.Vec3{0, -1, 0}, normal: mgl32.Vec3{0, 1, 0}},
		"west":  {origin: mgl32.Vec3{-5, 1, 0}, dir: mgl32.Vec3{1, 0, 0}, normal: mgl32.Vec3{-1, 0, 0}},
		"east":  {origin: mgl32.Vec3{5, 1, 0}, dir: mgl32.Vec3{-1, 0, 0}, normal: mgl32.Vec3{1, 0, 0}},
		"south": {origin: mgl32.Vec3{0, 1, 5}, dir: mgl32.Vec3{0, 0, -1}, normal: mgl32.Vec3{0, 0, 1}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := sim.Raycast(tc.origin, tc.dir, 10)
			require.True(t, res.Hit)
			assert.InDelta(t, 4, res.Distance, 3)
			assert.Equal(t, tc.normal, res.Normal)
		})
	}

	conf.FaceNormals = false
	fixed := newSimulation(t, conf)
	_, err = fixed.AddObstacle("crate", "", cube.Box(-1, 0, -1, 1, 2, 1))
	require.NoError(t, err)
	res := fixed.Raycast(mgl32.Vec3{-5, 1, 0}, mgl32.Vec3{1, 0, 0}, 10)
	require.True(t, res.Hit)
	assert.Equal(t, game.Up, res.Normal)
}

func TestRaycastIgnoresBodies(t *testing.T) {
	sim := newSimulation(t, DefaultConfig())
	_, err := sim.CreateBody("body", mgl32.Vec3{0, 2, 0}, DefaultBodyOptions())
	require.NoError(t, err)

	res := sim.Raycast(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0}, 10)
	assert.False(t, res.Hit)
}
