package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/journey/internal/application/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recording headless",
	Long: `Run a recording made with "journey play --record" without opening a
window and print the scene and level progress it ended in.

The same recording, seed and config always end in the same place.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}
	logger.Info("replaying", "file", args[0], "frames", len(data.Frames), "seed", data.Seed)

	res := replay.Run(*data, cfg, logger)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "frames:    %d\n", res.Frames)
	fmt.Fprintf(out, "scene:     %s\n", res.Scene)
	if res.Scene.IsLevel() {
		fmt.Fprintf(out, "phase:     %s\n", res.Level.Phase)
		fmt.Fprintf(out, "collected: %d\n", res.Level.CollectedCount)
		fmt.Fprintf(out, "player:    (%.1f, %.1f)\n", res.Player.X, res.Player.Y)
	}
	fmt.Fprintf(out, "ready:     %t\n", res.Ready)
	fmt.Fprintf(out, "accepted:  %t\n", res.Accepted)
	return nil
}
