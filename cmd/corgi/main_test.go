package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/corgi-arcade/internal/config"
	"github.com/vovakirdan/corgi-arcade/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "corgi") || !strings.Contains(out, "Courageous Corgi") {
		t.Errorf("list output missing corgi:\n%s", out)
	}
}

func TestConfigDefaultsCommand(t *testing.T) {
	out, err := execute(t, "config", "defaults")
	if err != nil {
		t.Fatalf("config defaults failed: %v", err)
	}
	if out != string(config.GetDefaultYAML()) {
		t.Error("config defaults should print the embedded YAML")
	}
}

func TestConfigValidateCommand(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, config.GetDefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "config", "validate", good)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out, "ok (72x18 world, 8 items worth 110, win at 60)") {
		t.Errorf("unexpected validate output: %s", out)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay:\n  starting_lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "config", "validate", bad); err == nil {
		t.Error("validate should reject zero lives")
	}
}

func TestPlayRejectsBadInput(t *testing.T) {
	if _, err := execute(t, "play", "tetris"); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("play tetris error = %v, want unknown game", err)
	}

	t.Cleanup(func() { flagDifficulty = "" })
	if _, err := execute(t, "play", "--difficulty", "nightmare"); err == nil {
		t.Error("play should reject an unknown difficulty")
	}
}

func TestScoresCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	t.Cleanup(func() { flagDBPath = "~/.corgi/scores.db" })

	out, err := execute(t, "scores", "--db", db)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("empty scores output:\n%s", out)
	}

	store, err := storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveRun(storage.Run{GameID: "corgi", Player: "rex", Score: 60, LivesLeft: 1, Won: true})
	store.Close()

	out, err = execute(t, "scores", "--db", db)
	if err != nil {
		t.Fatalf("scores failed: %v", err)
	}
	for _, want := range []string{"High Scores - Courageous Corgi", "rex", "60", "won", "Best: 60  Games: 1  Wins: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("scores output missing %q:\n%s", want, out)
		}
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:22":       "22",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
