package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/journey/internal/application/game"
	"github.com/younwookim/journey/internal/application/replay"
	"github.com/younwookim/journey/internal/application/system"
	"github.com/younwookim/journey/internal/infrastructure/config"
	"github.com/younwookim/journey/internal/infrastructure/render"
	"github.com/younwookim/journey/internal/infrastructure/shell"
)

var (
	flagWatch  bool
	flagRecord string
	flagSeed   int64
	flagWidth  int
	flagHeight int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window.

With --watch the config file is reloaded whenever it changes; the new values
apply from the next scene on. With --record every frame's input is written to
a file that "journey replay" can run later.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on change")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Viewport width override")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Viewport height override")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagWidth > 0 {
		cfg.Display.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Display.Height = flagHeight
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fonts, err := render.LoadFonts()
	if err != nil {
		return err
	}

	opts := game.Options{
		Config: cfg,
		Logger: logger,
		Keys:   system.EbitenKeys{},
		Seed:   seed,
		Fonts:  fonts,
	}

	var recorder *replay.Recorder
	if flagRecord != "" {
		recorder = replay.NewRecorder(seed, cfg.Display.Width, cfg.Display.Height)
		opts.OnFrame = recorder.RecordFrame
		logger.Info("recording enabled", "file", flagRecord, "seed", seed)
	}

	director := game.New(opts)
	shellOpts := shell.Options{Director: director, Fonts: fonts, Logger: logger, Seed: seed}

	if flagWatch {
		path := flagConfig
		if path == "" {
			path = config.DefaultPath
		}
		watcher, err := config.NewWatcher(path)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		defer func() { _ = watcher.Close() }()
		shellOpts.Reloads = watcher.Configs
		shellOpts.ReloadErrors = watcher.Errors
		logger.Info("watching config", "path", path)
	}

	sh := shell.New(shellOpts)

	stopSignals := watchSignals(sh.Quit, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)
	ebiten.SetRunnableOnUnfocused(true)

	runErr := ebiten.RunGame(sh)
	if runErr != nil && !errors.Is(runErr, shell.ErrQuit) {
		return runErr
	}

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(flagRecord); err != nil {
			logger.Error("failed to save recording", "error", err)
		} else {
			logger.Info("recording saved", "file", flagRecord, "frames", recorder.FrameCount())
		}
	}
	return nil
}
