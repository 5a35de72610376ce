package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board preset interactively",
	Long: `Show the preset picker, then open the board with the chosen preset.
--size and --max-tiles still override the picked preset.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	picked, err := tui.RunMenu(cfg, rc)
	if err != nil {
		return err
	}
	// User pressed quit
	if picked == nil {
		return nil
	}

	preset, err := cfg.Resolve(picked.ID, config.Overrides{Size: flagSize, MaxTiles: flagMaxTiles})
	if err != nil {
		return err
	}

	logger.Info("starting board", "preset", preset.ID, "size", preset.Size, "max_tiles", preset.MaxTiles)
	return tui.Run(preset, logger, rc)
}
