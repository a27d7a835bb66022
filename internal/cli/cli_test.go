package cli

import (
	"strings"
	"testing"

	"github.com/vimaki/colors-of-paintings/internal/colour"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := NewRootCmd()

	if rootCmd == nil {
		t.Fatal("NewRootCmd returned nil")
	}
	if rootCmd.Use != "colors-of-paintings" {
		t.Errorf("Expected use 'colors-of-paintings', got %q", rootCmd.Use)
	}

	wantSubcommands := []string{"extract", "version"}
	for _, name := range wantSubcommands {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected %q subcommand", name)
		}
	}
}

func TestExtractCmdFlags(t *testing.T) {
	extractCmd := newExtractCmd()

	tests := []struct {
		name        string
		defaultWant string
	}{
		{"colours", "5"},
		{"output", ""},
		{"no-visual", "false"},
		{"preview", "false"},
		{"max-size", "0"},
		{"index", ""},
	}

	for _, tt := range tests {
		flag := extractCmd.Flags().Lookup(tt.name)
		if flag == nil {
			t.Errorf("Expected --%s flag", tt.name)
			continue
		}
		if flag.DefValue != tt.defaultWant {
			t.Errorf("--%s default = %q, want %q", tt.name, flag.DefValue, tt.defaultWant)
		}
	}
}

func TestExtractCmdRequiresImageArg(t *testing.T) {
	extractCmd := newExtractCmd()

	if err := extractCmd.Args(extractCmd, nil); err == nil {
		t.Error("Expected error for missing image argument")
	}
	if err := extractCmd.Args(extractCmd, []string{"a.png", "b.png"}); err == nil {
		t.Error("Expected error for extra arguments")
	}
	if err := extractCmd.Args(extractCmd, []string{"a.png"}); err != nil {
		t.Errorf("Unexpected error for single argument: %v", err)
	}
}

func TestFormatColourWithPreview(t *testing.T) {
	out := formatColourWithPreview(colour.RGB{R: 255, G: 10, B: 20})

	if !strings.Contains(out, "\x1b[48;2;255;10;20m") {
		t.Error("Expected a 24-bit ANSI background escape")
	}
	if !strings.Contains(out, "\x1b[0m") {
		t.Error("Expected an ANSI reset")
	}
	if !strings.Contains(out, "#FF0A14") {
		t.Error("Expected the hex form")
	}
	if !strings.Contains(out, "rgb(255, 10, 20)") {
		t.Error("Expected the rgb form")
	}
}
