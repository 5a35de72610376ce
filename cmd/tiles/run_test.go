package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/selection"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected command
		wantErr  bool
	}{
		{"select:3", command{kind: cmdSelect, index: 3}, false},
		{"s:12", command{kind: cmdSelect, index: 12}, false},
		{"undo", command{kind: cmdUndo}, false},
		{"rotate", command{kind: cmdRotate}, false},
		{"select:x", command{}, true},
		{"select", command{}, true},
		{"pick:1", command{}, true},
		{"", command{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseCommand(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseCommand(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.expected {
				t.Errorf("parseCommand(%q) = %+v, expected %+v", tc.input, got, tc.expected)
			}
		})
	}
}

func parseAll(t *testing.T, args ...string) []command {
	t.Helper()
	cmds := make([]command, 0, len(args))
	for _, a := range args {
		c, err := parseCommand(a)
		if err != nil {
			t.Fatalf("parseCommand(%q): %v", a, err)
		}
		cmds = append(cmds, c)
	}
	return cmds
}

func TestExecuteRotate(t *testing.T) {
	e, err := selection.New(selection.Config{Size: 4, MaxTiles: 4})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	snap := execute(e, parseAll(t, "s:0", "s:1", "s:2", "s:3", "rotate"), &out, log.New(io.Discard))

	for _, idx := range []int{0, 4, 8, 12} {
		if !snap.Checked(idx) {
			t.Errorf("cell %d should be checked", idx)
		}
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestExecuteOutOfScopeContinues(t *testing.T) {
	e, err := selection.New(selection.Config{Size: 4, MaxTiles: 4})
	if err != nil {
		t.Fatal(err)
	}

	var out, logs bytes.Buffer
	logger := log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})
	snap := execute(e, parseAll(t, "s:12", "s:13", "s:14", "s:15", "rotate", "undo"), &out, logger)

	if !strings.Contains(out.String(), "Rotation out of scope") {
		t.Errorf("output = %q, expected out-of-scope notice", out.String())
	}
	if !reflect.DeepEqual(snap.Selection, []int{12, 13, 14}) {
		t.Errorf("Selection = %v, expected [12 13 14]", snap.Selection)
	}
	if !strings.Contains(logs.String(), "rotate out of scope") {
		t.Errorf("logs = %q, expected a warning", logs.String())
	}
}

func TestPrintSnapshot(t *testing.T) {
	e, err := selection.New(selection.Config{Size: 5, MaxTiles: 4})
	if err != nil {
		t.Fatal(err)
	}
	e.Select(7)
	e.Select(2)

	var out bytes.Buffer
	printSnapshot(&out, e.Snapshot())

	for _, want := range []string{"Selection: [7 2]", "Direction: up", "Can undo: yes  Can rotate: no"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
