package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-colour codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
}

// ScreenRenderer converts Screen buffers to styled strings for one output.
// SSH sessions get their own so colours follow the client's terminal.
type ScreenRenderer struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer builds the colour styles on r. Nil uses the default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
	}
	for c, code := range ansiCodes {
		sr.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	return sr.plain
}

// Render groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultScreenRenderer = NewScreenRenderer(nil)

// RenderScreen renders s with the process-wide renderer.
func RenderScreen(s *core.Screen) string {
	return defaultScreenRenderer.Render(s)
}
