package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/oerror"
	"github.com/oomph-ac/physim/simulation"
	"github.com/oomph-ac/physim/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, simulation.DefaultConfig(), s.SimulationConfig())
	assert.Equal(t, world.DefaultLayout(), s.Layout())
	assert.Equal(t, 60, s.Server.TickRate)
}

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveDefault(path))
	assert.Error(t, SaveDefault(path), "saving over an existing file should fail")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadKeepsDefaultsForMissingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[Simulation]
GroundLevel = 2.0
FaceNormals = true

[Simulation.Gravity]
Y = -1.62

[Server]
TickRate = 20
`), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	conf := s.SimulationConfig()
	assert.Equal(t, float32(2), conf.GroundLevel)
	assert.True(t, conf.FaceNormals)
	assert.Equal(t, mgl32.Vec3{0, -1.62, 0}, conf.Gravity)
	assert.Equal(t, simulation.DefaultConfig().MaxDeltaTime, conf.MaxDeltaTime)
	assert.Equal(t, 20, s.Server.TickRate)
	assert.Equal(t, "info", s.Server.LogLevel)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := map[string]string{
		"negative skin width": "[Simulation]\nSkinWidth = -1.0\n",
		"zero tick rate":      "[Server]\nTickRate = 0\n",
		"unknown log level":   "[Server]\nLogLevel = \"loud\"\n",
		"negative items":      "[World]\nItems = -3\n",
		"malformed":           "[Server\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	s := DefaultSettings()
	s.Simulation.MaxDeltaTime = 0
	assert.ErrorIs(t, s.Validate(), oerror.ErrInvalidConfiguration)
}
