package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List board presets",
	Long:  `Shows the board presets from the loaded configuration.`,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Board presets:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range cfg.Presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Size", "Tiles", "Title")
	fmt.Fprintf(out, "  %-*s  %-5s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-----")

	for _, p := range cfg.Presets {
		title := p.Title
		if p.ID == cfg.DefaultPreset {
			title += " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %-5d  %-5d  %s\n", maxIDLen, p.ID, p.Size, p.MaxTiles, title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tiles play --preset <id>' to use a preset.")
	return nil
}
