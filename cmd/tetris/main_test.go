package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagDefaults = "", "", false
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsVariants(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"tetris", "tetris_classic"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output lacks %q:\n%s", id, out)
		}
	}
}

func TestConfigPrintsPreset(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "start_level: 5") {
		t.Errorf("hard preset should start at level 5:\n%s", out)
	}
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "timing:") {
		t.Errorf("defaults should include the timing section:\n%s", out)
	}
}

func TestConfigRejectsUnknownPreset(t *testing.T) {
	if _, err := execute(t, "config", "--difficulty", "insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestBadLogLevel(t *testing.T) {
	t.Cleanup(func() { flagLogLevel = "info" })
	if _, err := execute(t, "list", "--log-level", "loud"); err == nil {
		t.Error("bad log level should fail")
	}
}

func TestPlayRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  fall_normal_ms: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "play", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "fall_normal_ms") {
		t.Errorf("play should report the invalid config, got %v", err)
	}
}

func TestPlayRejectsMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := execute(t, "play", "--config", missing); err == nil {
		t.Error("play should fail on a missing config file")
	}
}

func TestRootHelpDescribesRotation(t *testing.T) {
	if !strings.Contains(rootCmd.Long, "no wall kicks") {
		t.Error("help should describe in-place rotation")
	}
}
