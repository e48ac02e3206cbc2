package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/physim/simulation"
	"github.com/oomph-ac/physim/world"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Settings contains everything that can be configured for a simulation server.
type Settings struct {
	Simulation struct {
		Gravity         Vec
		GroundLevel     float32
		SkinWidth       float32
		MaxDeltaTime    float32
		RaycastDistance float32
		FaceNormals     bool
		ConsumableTypes []string
		TriggerTypes    []string
	}
	World struct {
		// Populate adds the default scenery when the server starts.
		Populate  bool
		Seed      uint64
		Obstacles int
		Items     int
	}
	Server struct {
		// TickRate is the amount of ticks run every second.
		TickRate int
		LogLevel string
		// SentryDSN enables crash reporting when set.
		SentryDSN string
		// StatsViewAddr is the address the runtime stats dashboard listens on when PPROF_ENABLED is set.
		StatsViewAddr string
	}
}

// Vec is a vector as it is written in the settings file.
type Vec struct {
	X, Y, Z float32
}

// Vec3 ...
func (v Vec) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	conf := simulation.DefaultConfig()
	layout := world.DefaultLayout()

	s := Settings{}
	s.Simulation.Gravity = Vec{conf.Gravity.X(), conf.Gravity.Y(), conf.Gravity.Z()}
	s.Simulation.GroundLevel = conf.GroundLevel
	s.Simulation.SkinWidth = conf.SkinWidth
	s.Simulation.MaxDeltaTime = conf.MaxDeltaTime
	s.Simulation.RaycastDistance = conf.RaycastDistance
	s.Simulation.FaceNormals = conf.FaceNormals
	s.Simulation.ConsumableTypes = conf.ConsumableTypes
	s.Simulation.TriggerTypes = conf.TriggerTypes

	s.World.Populate = true
	s.World.Seed = layout.Seed
	s.World.Obstacles = layout.Obstacles
	s.World.Items = layout.Items

	s.Server.TickRate = 60
	s.Server.LogLevel = logrus.InfoLevel.String()
	s.Server.StatsViewAddr = "localhost:18066"
	return s
}

// SimulationConfig returns the simulation config described by the settings.
func (s Settings) SimulationConfig() simulation.Config {
	return simulation.Config{
		Gravity:         s.Simulation.Gravity.Vec3(),
		GroundLevel:     s.Simulation.GroundLevel,
		SkinWidth:       s.Simulation.SkinWidth,
		MaxDeltaTime:    s.Simulation.MaxDeltaTime,
		RaycastDistance: s.Simulation.RaycastDistance,
		FaceNormals:     s.Simulation.FaceNormals,
		ConsumableTypes: s.Simulation.ConsumableTypes,
		TriggerTypes:    s.Simulation.TriggerTypes,
	}
}

// Layout returns the world layout described by the settings.
func (s Settings) Layout() world.Layout {
	return world.Layout{Seed: s.World.Seed, Obstacles: s.World.Obstacles, Items: s.World.Items}
}

// Validate checks the settings for values the server cannot run with.
func (s Settings) Validate() error {
	if err := s.SimulationConfig().Validate(); err != nil {
		return err
	}
	if s.Server.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", s.Server.TickRate)
	}
	if s.World.Obstacles < 0 || s.World.Items < 0 {
		return fmt.Errorf("world object counts must not be negative")
	}
	if _, err := logrus.ParseLevel(s.Server.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist. Values
// missing from the file keep their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}
