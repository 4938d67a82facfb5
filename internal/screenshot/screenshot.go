// Package screenshot saves a rendered screen buffer as plain text or as a
// PNG raster of its cells.
package screenshot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// Raster cell size in pixels. Fits gg's built-in 7x13 face.
const (
	CellWidth  = 8
	CellHeight = 14
)

// Background is the PNG canvas colour.
var Background = color.RGBA{12, 12, 28, 255}

// palette approximates the terminal colours used by the tui renderer.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {220, 220, 220, 255},
	core.ColorRed:           {205, 49, 49, 255},
	core.ColorGreen:         {13, 188, 121, 255},
	core.ColorYellow:        {229, 229, 16, 255},
	core.ColorBlue:          {36, 114, 200, 255},
	core.ColorMagenta:       {188, 63, 188, 255},
	core.ColorCyan:          {17, 168, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorBrightRed:     {241, 76, 76, 255},
	core.ColorBrightGreen:   {35, 209, 139, 255},
	core.ColorBrightYellow:  {245, 245, 67, 255},
	core.ColorBrightBlue:    {59, 142, 234, 255},
	core.ColorBrightMagenta: {214, 112, 214, 255},
	core.ColorBrightCyan:    {41, 184, 219, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 135, 0, 255},
	core.ColorGray:          {138, 138, 138, 255},
	core.ColorBrown:         {175, 95, 0, 255},
}

// RGBA returns the raster colour for a cell colour.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// box-drawing arms: left, right, up, down
var boxArms = map[rune][4]bool{
	'─': {true, true, false, false},
	'│': {false, false, true, true},
	'┌': {false, true, false, true},
	'┐': {true, false, false, true},
	'└': {false, true, true, false},
	'┘': {true, false, true, false},
}

// WriteText saves the screen's runes without colour.
func WriteText(path string, s *core.Screen) error {
	if err := os.WriteFile(path, []byte(s.String()+"\n"), 0o600); err != nil {
		return fmt.Errorf("screenshot: write %s: %w", path, err)
	}
	return nil
}

// WritePNG rasterises the screen, one CellWidth x CellHeight block per cell.
func WritePNG(path string, s *core.Screen) error {
	dc := Render(s)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("screenshot: write %s: %w", path, err)
	}
	return nil
}

// Render draws the screen onto a new gg context.
func Render(s *core.Screen) *gg.Context {
	w, h := s.Width()*CellWidth, s.Height()*CellHeight
	dc := gg.NewContext(max(w, 1), max(h, 1))

	dc.SetColor(Background)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			drawCell(dc, x*CellWidth, y*CellHeight, cell)
		}
	}
	return dc
}

func drawCell(dc *gg.Context, x0, y0 int, cell core.Cell) {
	dc.SetColor(RGBA(cell.Color))

	arms, ok := boxArms[cell.Rune]
	if !ok {
		dc.DrawString(string(cell.Rune), float64(x0), float64(y0+CellHeight-3))
		return
	}

	mx, my := x0+CellWidth/2, y0+CellHeight/2
	if arms[0] {
		rect(dc, x0, my-1, mx+1-x0, 2)
	}
	if arms[1] {
		rect(dc, mx-1, my-1, x0+CellWidth-mx+1, 2)
	}
	if arms[2] {
		rect(dc, mx-1, y0, 2, my+1-y0)
	}
	if arms[3] {
		rect(dc, mx-1, my-1, 2, y0+CellHeight-my+1)
	}
}

func rect(dc *gg.Context, x, y, w, h int) {
	dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	dc.Fill()
}

// DefaultDir returns ~/.corgi/screenshots.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: cannot get home directory: %w", err)
	}
	return filepath.Join(home, ".corgi", "screenshots"), nil
}

// Capture writes <gameID>_<timestamp>.txt and .png into dir.
// Returns the base path without extension.
func Capture(dir, gameID string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: create %s: %w", dir, err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", gameID, now.Format("20060102_150405")))
	if err := WriteText(base+".txt", s); err != nil {
		return "", err
	}
	if err := WritePNG(base+".png", s); err != nil {
		return "", err
	}
	return base, nil
}
