package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/selection"
)

var runCmd = &cobra.Command{
	Use:   "run <command>...",
	Short: "Apply board commands without a terminal UI",
	Long: `Apply a sequence of commands to a fresh board and print the result.

Commands:
  select:<index>  (or s:<index>)  - Select the tile at index
  undo                            - Delete the last selected tile
  rotate                          - Rotate a full selection

Rejected selections are ignored, as on the interactive board. A rotation
that would leave the board prints "Rotation out of scope" and keeps going.

Examples:
  tiles run select:0 select:1 select:2 select:3 rotate
  tiles run --preset wide s:7 s:2 undo s:8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

type commandKind int

const (
	cmdSelect commandKind = iota
	cmdUndo
	cmdRotate
)

// command is one parsed board command.
type command struct {
	kind  commandKind
	index int
}

// parseCommand parses select:<i>, s:<i>, undo or rotate.
func parseCommand(s string) (command, error) {
	switch s {
	case "undo":
		return command{kind: cmdUndo}, nil
	case "rotate":
		return command{kind: cmdRotate}, nil
	}

	name, arg, found := strings.Cut(s, ":")
	if !found || (name != "select" && name != "s") {
		return command{}, fmt.Errorf("unknown command %q", s)
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		return command{}, fmt.Errorf("bad tile index in %q: %w", s, err)
	}
	return command{kind: cmdSelect, index: index}, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cmds := make([]command, 0, len(args))
	for _, a := range args {
		c, parseErr := parseCommand(a)
		if parseErr != nil {
			return parseErr
		}
		cmds = append(cmds, c)
	}

	preset, err := loadPreset()
	if err != nil {
		return err
	}
	engine, err := selection.New(preset.Board())
	if err != nil {
		return err
	}

	snap := execute(engine, cmds, cmd.OutOrStdout(), logger)
	printSnapshot(cmd.OutOrStdout(), snap)
	return nil
}

// execute applies the commands in order and returns the final state.
func execute(e *selection.Engine, cmds []command, out io.Writer, logger *log.Logger) selection.Snapshot {
	for _, c := range cmds {
		switch c.kind {
		case cmdSelect:
			snap, ok := e.Select(c.index)
			logger.Debug("select", "index", c.index, "accepted", ok, "selected", len(snap.Selection), "direction", snap.Direction)

		case cmdUndo:
			snap, ok := e.Undo()
			logger.Debug("undo", "accepted", ok, "selected", len(snap.Selection), "direction", snap.Direction)

		case cmdRotate:
			_, err := e.Rotate()
			switch {
			case errors.Is(err, selection.ErrOutOfScope):
				logger.Warn("rotate out of scope")
				fmt.Fprintln(out, tui.OutOfScopeMessage)
			case err != nil:
				logger.Debug("rotate ignored", "error", err)
			default:
				logger.Debug("rotate")
			}
		}
	}
	return e.Snapshot()
}

// printSnapshot writes the board and the selection summary.
func printSnapshot(out io.Writer, s selection.Snapshot) {
	fmt.Fprintln(out, tui.BoardText(s))
	fmt.Fprintf(out, "Selection: %v\n", s.Selection)
	fmt.Fprintf(out, "Direction: %s\n", s.Direction)
	fmt.Fprintf(out, "Can undo: %s  Can rotate: %s\n", yesNo(s.CanUndo), yesNo(s.CanRotate))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
