package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/lucky-slots/audio"
	"github.com/lixenwraith/lucky-slots/config"
	"github.com/lixenwraith/lucky-slots/constants"
	"github.com/lixenwraith/lucky-slots/engine"
	"github.com/lixenwraith/lucky-slots/input"
	"github.com/lixenwraith/lucky-slots/render"
	"github.com/lixenwraith/lucky-slots/slot"
)

var (
	configFlag = flag.String("config", "", "YAML rules file (defaults when empty)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
	seedFlag   = flag.Uint64("seed", 0, "Reel RNG seed, 0 for random")
	asciiFlag  = flag.Bool("ascii", false, "Draw reels with ASCII labels instead of emoji")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lucky-slots: %v\n", err)
		os.Exit(1)
	}

	logger, rotator := setupLogging(*debugFlag)
	if rotator != nil {
		defer rotator.Close()
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Restore the terminal before printing anything if the game crashes
	crash := func(where string, r any) {
		screen.Fini()
		logger.Error("crash", zap.String("where", where), zap.Any("panic", r))
		fmt.Fprintf(os.Stderr, "\n\x1b[31mLUCKY-SLOTS %s CRASHED: %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash("MAIN", r)
		}
	}()

	screen.HideCursor()

	scheduler := engine.NewLoopScheduler(constants.SchedulerQueueSize)
	defer scheduler.Close()

	rng := slot.DefaultRNG()
	if *seedFlag != 0 {
		rng = slot.NewSeededRNG(*seedFlag)
	}
	machine := slot.NewMachine(cfg.Rules(), scheduler,
		slot.WithRandomSource(rng),
		slot.WithLogger(logger),
	)

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio initialization failed, continuing without audio", zap.Error(err))
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)
	machine.Subscribe(sounds.HandleEvent)

	logger.Info("game started",
		zap.Int("credits", cfg.Credits),
		zap.Int("spin_cost", cfg.SpinCost),
		zap.Int("symbols", cfg.Symbols),
		zap.Uint64("seed", *seedFlag))

	renderer := render.NewRenderer(screen)
	var frame int64
	draw := func() {
		renderer.Draw(render.View{
			State: machine.State(),
			Rules: machine.Rules(),
			Tally: machine.Tally(),
			Frame: frame,
			Muted: sounds.IsMuted(),
			ASCII: *asciiFlag,
		})
	}

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)

	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	draw()
	for {
		select {
		case ev := <-events:
			action := input.Translate(ev)
			switch action {
			case input.ActionQuit:
				logger.Info("quit", zap.Int("credits", machine.State().Credits))
				return
			case input.ActionSpin:
				if !machine.Spin() {
					sounds.PlayDenied()
				}
			case input.ActionReset:
				machine.Reset()
			case input.ActionToggleMute:
				logger.Debug("mute toggled", zap.Bool("muted", sounds.ToggleMute()))
			case input.ActionResize:
				screen.Sync()
			}
			draw()

		case task := <-scheduler.Tasks():
			task()
			draw()

		case <-frameTicker.C:
			frame++
			draw()
		}
	}
}
