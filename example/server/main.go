package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/physim"
	"github.com/oomph-ac/physim/event"
	"github.com/oomph-ac/physim/settings"
	"github.com/oomph-ac/physim/simulation"
	"github.com/oomph-ac/physim/world"
	"github.com/sirupsen/logrus"
)

const configPath = "config.toml"

// The following program runs a physics server populated with the default scenery and a single player body,
// logging every interaction event until it is interrupted.
func main() {
	conf, err := loadSettings()
	if err != nil {
		fmt.Println(err)
		return
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	level, _ := logrus.ParseLevel(conf.Server.LogLevel)
	logger.SetLevel(level)

	if conf.Server.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: conf.Server.SentryDSN}); err != nil {
			logger.Errorf("unable to initialize sentry: %v", err)
		}
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(conf.Server.StatsViewAddr))

		mgr := statsview.New()
		go mgr.Start()
	}

	sim, err := simulation.New(conf.SimulationConfig(), logger)
	if err != nil {
		logger.Fatalf("unable to create simulation: %v", err)
	}
	if conf.World.Populate {
		if err := world.Populate(sim, conf.Layout()); err != nil {
			logger.Fatalf("unable to populate world: %v", err)
		}
	}

	srv := physim.New(logger, sim, conf.Server.TickRate)
	srv.Handle(physim.HandlerFunc(func(tick uint64, events []event.Event) {
		for _, ev := range events {
			switch ev := ev.(type) {
			case event.ItemCollected:
				logger.WithFields(logrus.Fields{"tick": tick, "body": ev.Body(), "item": ev.ItemID}).Infof("%s collected", ev.ItemType)
			case event.TriggerActivated:
				logger.WithFields(logrus.Fields{"tick": tick, "body": ev.Body(), "trigger": ev.TriggerID}).Infof("%s activated", ev.TriggerType)
			}
		}
	}))

	playerID := uuid.NewString()
	if _, err := srv.CreateBody(playerID, mgl32.Vec3{0, 10, 0}, simulation.DefaultBodyOptions()); err != nil {
		logger.Fatalf("unable to spawn player: %v", err)
	}
	logger.Infof("spawned player %s, ticking at %d TPS", playerID, conf.Server.TickRate)

	go srv.StartTicking()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	_ = srv.Close()
	if snap, err := srv.Snapshot(playerID); err == nil {
		logger.Infof("player finished at %v (on ground: %v)", snap.Position, snap.OnGround)
	}
	sentry.Flush(2 * time.Second)
}

// loadSettings loads the settings file, creating it with the default settings if it does not exist yet.
func loadSettings() (settings.Settings, error) {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := settings.SaveDefault(configPath); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(configPath)
}
