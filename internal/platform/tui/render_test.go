package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBrown)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "abcd  " {
		t.Errorf("line 0 = %q, want %q", lines[0], "abcd  ")
	}
	if lines[1] != "plain " {
		t.Errorf("line 1 = %q, want %q", lines[1], "plain ")
	}
}

func TestScreenRendererUnknownColor(t *testing.T) {
	s := core.NewScreen(2, 1)
	s.SetColored(0, 0, 'x', core.Color(250))

	out := NewScreenRenderer(nil).Render(s)
	if got := ansi.Strip(out); got != "x " {
		t.Errorf("render = %q, want %q", got, "x ")
	}
}
