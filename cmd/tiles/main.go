// tiles is a terminal tile-selection puzzle.
//
// Usage:
//
//	tiles play               - Open the interactive board
//	tiles menu               - Pick a preset, then open the board
//	tiles run <cmd>...       - Apply select/undo/rotate commands headlessly
//	tiles presets            - List board presets
//
// Global flags:
//
//	--config <path>     - Custom presets YAML
//	--preset <id>       - Board preset (default from config)
//	--size <n>          - Override board side length
//	--max-tiles <n>     - Override maximum selected tiles
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSize     int
	flagMaxTiles int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Tiles - select and rotate runs of tiles in your terminal",
	Long: `Tiles is a terminal puzzle board. Pick a chain of neighbouring tiles
in one direction, undo the last pick, and rotate a full row run into a
column.

Available commands:
  play     - Interactive board
  menu     - Pick a preset, then play
  run      - Apply commands without a terminal UI
  presets  - Show board presets

Examples:
  tiles play
  tiles play --preset wide
  tiles run select:0 select:1 select:2 select:3 rotate
  tiles presets`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom presets YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board preset id")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board side length (overrides preset)")
	rootCmd.PersistentFlags().IntVar(&flagMaxTiles, "max-tiles", 0, "Maximum selected tiles (overrides preset)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(presetsCmd)
}

// newLogger builds the command logger. Logs go to fallback unless a log
// file was requested. The returned closer must be called when done.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
		Level:           level,
	})
	return logger, closer, nil
}

// loadPreset loads the configuration and resolves the board preset from
// the global flags.
func loadPreset() (config.Preset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Preset{}, err
	}
	return cfg.Resolve(flagPreset, config.Overrides{
		Size:     flagSize,
		MaxTiles: flagMaxTiles,
	})
}
