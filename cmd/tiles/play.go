package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the interactive board",
	Long: `Open the tile board in the terminal.

Controls:
  Arrows/hjkl    - Move cursor
  Space/Enter    - Select tile (mouse click works too)
  U/Backspace    - Delete last tile
  R              - Rotate tiles (full selection only)
  N              - New board
  ?              - Toggle help
  Q/Ctrl+C       - Quit

Examples:
  tiles play
  tiles play --preset long
  tiles play --size 7 --max-tiles 4
  tiles play --log-level debug --log-file tiles.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs are discarded
	// unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	preset, err := loadPreset()
	if err != nil {
		return err
	}

	// Get terminal size for the initial help layout
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	logger.Info("starting board", "preset", preset.ID, "size", preset.Size, "max_tiles", preset.MaxTiles)
	return tui.Run(preset, logger, cfg)
}
