package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/puzzle-snap/audio"
	"github.com/lixenwraith/puzzle-snap/config"
	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/engine"
	"github.com/lixenwraith/puzzle-snap/input"
	"github.com/lixenwraith/puzzle-snap/logging"
	"github.com/lixenwraith/puzzle-snap/network"
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/render"
	"github.com/lixenwraith/puzzle-snap/service"
	"github.com/lixenwraith/puzzle-snap/status"
	"github.com/lixenwraith/puzzle-snap/telemetry"
)

var (
	configFlag = flag.String("config", "", "Board config file (json, yaml, toml)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to the log directory")
	touchFlag  = flag.Bool("touch", false, "Treat the left mouse button as a touch pointer")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	feedFlag   = flag.String("feed", "", "Serve the websocket event feed on this address")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *touchFlag {
		cfg.Touch = true
	}
	if *feedFlag != "" {
		cfg.Network.Enabled = true
		cfg.Network.Addr = *feedFlag
	}

	logger, logFile, err := logging.Setup(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, logger); err != nil {
		logger.Error().Err(err).Msg("exit with error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	// Goroutines started through core.Go restore the screen before reporting a crash
	core.SetCrashHandler(func(any) { screen.Fini() })
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// Services
	hub := service.NewHub()
	audioSvc := audio.NewService(logger)
	statusSvc := status.NewService()
	netSvc := network.NewService(logger)
	for _, svc := range []service.Service{audioSvc, statusSvc, netSvc} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	var game *engine.Game
	netCfg := network.DefaultConfig()
	netCfg.Enabled = cfg.Network.Enabled
	netCfg.Address = cfg.Network.Addr
	netCfg.Path = cfg.Network.Path
	hub.Configure(audioSvc.Name(), *muteFlag)
	hub.Configure(netSvc.Name(), netCfg, network.SnapshotFunc(func() engine.Snapshot {
		return game.Snapshot()
	}))

	if err := hub.InitAll(); err != nil {
		return err
	}

	// Game
	clock := engine.NewPausableClock(nil)
	w, h := screen.Size()
	game = engine.NewGame(cfg.Setup(w, h), engine.Deps{
		Sound:  audioSvc.Player(),
		Clock:  clock,
		Logger: logger,
	})

	registry := statusSvc.Registry()
	tel, err := telemetry.New(nil, registry)
	if err != nil {
		return err
	}
	game.RegisterHandler(tel)
	game.RegisterHandler(network.NewFeedHandler(netSvc.Hub()))

	if err := hub.StartAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	scheduler := engine.NewClockScheduler(game, clock, cfg.TickInterval, logger)
	scheduler.Start()
	defer scheduler.Stop()

	orchestrator := render.NewBoardOrchestrator(screen)
	translator := input.NewTranslator(cfg.Touch)

	events := make(chan tcell.Event, parameter.InputBufferSize)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	draw := func() {
		registry.Ints.Get("dropped_input").Store(game.DroppedInput())
		registry.Ints.Get("feed_subscribers").Store(int64(netSvc.Hub().Count()))
		muted := false
		if e := audioSvc.Engine(); e != nil {
			muted = e.IsMuted()
		}
		orchestrator.RenderFrame(render.RenderContext{
			Board:  game.Snapshot(),
			Status: registry.Lines(),
			Paused: scheduler.IsPaused(),
			Muted:  muted,
		})
	}

	// Paused boards still redraw on resize and key input
	idle := time.NewTicker(parameter.IdleRedrawInterval)
	defer idle.Stop()

	draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, scheduler, audioSvc) {
					logger.Info().Msg("quit requested")
					return nil
				}
			case *tcell.EventMouse:
				for _, pe := range translator.Translate(ev) {
					if !game.Submit(pe) {
						logger.Warn().Stringer("phase", pe.Phase).Msg("input buffer full, pointer event dropped")
					}
				}
			case *tcell.EventFocus:
				if !ev.Focused {
					if pe, ok := translator.Cancel(); ok {
						game.Submit(pe)
					}
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				game.Resize(w, h)
				orchestrator.Resize(w, h)
			}
			draw()

		case <-scheduler.Updates():
			draw()

		case <-idle.C:
			if scheduler.IsPaused() {
				draw()
			}
		}
	}
}

// handleKey applies a control key; returns false to quit
func handleKey(ev *tcell.EventKey, scheduler *engine.ClockScheduler, audioSvc *audio.Service) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'p', ' ':
			if scheduler.IsPaused() {
				scheduler.Resume()
			} else {
				scheduler.Pause()
			}
		case 'm':
			if e := audioSvc.Engine(); e != nil {
				e.ToggleMute()
			}
		}
	}
	return true
}
