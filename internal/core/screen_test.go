package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(72, 18)
	if s.Width() != 72 || s.Height() != 18 {
		t.Fatalf("size = %dx%d, want 72x18", s.Width(), s.Height())
	}

	want := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 72)+"\n", 18), "\n")
	if got := s.String(); got != want {
		t.Error("new screen is not all spaces")
	}
	if c := s.GetCell(71, 17); c != blankCell {
		t.Errorf("corner cell = %+v, want blank", c)
	}
}

func TestScreenIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(4, 3)
	points := []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 3}, {100, 100}}
	for _, p := range points {
		s.SetColored(p.x, p.y, '#', ColorRed)
		if c := s.GetCell(p.x, p.y); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p.x, p.y, c)
		}
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Errorf("out of bounds write landed on screen:\n%s", s)
	}
}

func TestDrawTextColoredClipsAtRightEdge(t *testing.T) {
	s := NewScreen(72, 2)
	s.DrawTextColored(69, 1, "bone", ColorOrange)

	if got := s.Row(1)[69:]; got != "bon" {
		t.Errorf("clipped text = %q, want %q", got, "bon")
	}
	for x := 69; x < 72; x++ {
		if c := s.GetCell(x, 1); c.Color != ColorOrange {
			t.Errorf("cell %d colour = %v, want orange", x, c.Color)
		}
	}
	if c := s.GetCell(68, 1); c != blankCell {
		t.Errorf("cell before text = %+v, want blank", c)
	}
}

func TestSpriteRowsDrawBottomUp(t *testing.T) {
	// A two row sprite standing on world row 0 of an 18 row world.
	const worldH = 18
	s := NewScreen(10, worldH)
	sprite := []string{" /\\", "(o )"}
	for i, row := range sprite {
		worldY := len(sprite) - 1 - i
		s.DrawTextColored(3, worldH-1-worldY, row, ColorBrown)
	}

	if got := s.Row(worldH - 1); got != "   (o )   " {
		t.Errorf("feet row = %q", got)
	}
	if got := s.Row(worldH - 2); got != "    /\\    " {
		t.Errorf("ears row = %q", got)
	}
	// Spaces in sprite art are still written as cells.
	if c := s.GetCell(3, worldH-2); c.Color != ColorBrown {
		t.Errorf("sprite space colour = %v, want brown", c.Color)
	}
}

func TestDrawTextCentered(t *testing.T) {
	tests := []struct {
		width int
		text  string
		want  string
	}{
		{21, "GAME OVER", "      GAME OVER      "},
		{9, "★ WIN ★", " ★ WIN ★ "},
		{4, "PAUSED", "AUSE"},
	}
	for _, tt := range tests {
		s := NewScreen(tt.width, 1)
		s.DrawTextCentered(0, tt.text)
		if got := s.Row(0); got != tt.want {
			t.Errorf("width %d %q: row = %q, want %q", tt.width, tt.text, got, tt.want)
		}
	}
}

func TestDrawBoxColoredFrame(t *testing.T) {
	s := NewScreen(8, 4)
	s.DrawBoxColored(NewRect(1, 0, 6, 3), ColorBrown)

	want := []string{
		" ┌────┐ ",
		" │    │ ",
		" └────┘ ",
		"        ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
	if c := s.GetCell(6, 2); c.Color != ColorBrown {
		t.Errorf("corner colour = %v, want brown", c.Color)
	}
	if c := s.GetCell(3, 1); c != blankCell {
		t.Errorf("box interior = %+v, want blank", c)
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 2, 2))
	if got := string([]rune(s.Row(0))[:2]) + string([]rune(s.Row(1))[:2]); got != "┌┐└┘" {
		t.Errorf("minimal box = %q", got)
	}
}

func TestDrawRectAndLines(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(1, 2, 3, 2), '~')
	s.DrawHLine(0, 0, 10, '=')
	s.DrawVLine(5, 1, 2, '|')

	want := []string{
		"======",
		"     |",
		" ~~~ |",
		" ~~~  ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}
}

func TestFillAndClearResetColour(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColored(1, 1, '*', ColorBrightYellow)

	s.Fill('.')
	if got := s.String(); got != "...\n..." {
		t.Errorf("after Fill = %q", got)
	}
	if c := s.GetCell(1, 1); c.Color != ColorDefault {
		t.Errorf("Fill kept colour %v", c.Color)
	}

	s.Clear()
	if c := s.GetCell(1, 1); c != blankCell {
		t.Errorf("after Clear = %+v", c)
	}
}

func TestResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "abcd", ColorGreen)
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink = %q", got)
	}
	if c := s.GetCell(1, 0); c.Color != ColorGreen {
		t.Errorf("resize lost colour: %+v", c)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after reshape = %q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("same size resize changed content: %q", got)
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(5, 1)
	for _, y := range []int{-1, 1} {
		if got := s.Row(y); got != "     " {
			t.Errorf("Row(%d) = %q, want blank row", y, got)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"default", ColorDefault, true},
		{"orange", ColorOrange, true},
		{"brown", ColorBrown, true},
		{"bright_cyan", ColorBrightCyan, true},
		{"Orange", ColorDefault, false},
		{"puce", ColorDefault, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
