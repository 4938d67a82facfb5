// Package assets loads the text sprites drawn by the terminal host.
//
// A sprite file holds one or more frames of text separated by a line
// containing only "---". Directive lines configure the whole sprite:
//
//	@delay 0.15   seconds per animation frame
//	@color orange palette name used when drawing
//
// A line holding only "#", or starting with "# ", is a comment; other
// rows beginning with '#' are art. Spaces are transparent.
package assets

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// Transparent is the rune that is skipped when a sprite is drawn.
const Transparent = ' '

const frameSeparator = "---"

// Sprite is a still image (one frame) or an animation (several frames).
// Every frame is padded to Width x Height. Sprites are immutable after loading.
type Sprite struct {
	Name   string
	Width  int
	Height int
	Frames [][][]rune // [frame][row][col]
	Delay  float64    // Seconds per frame, 0 for stills
	Color  core.Color

	mirror *Sprite
}

// Animated reports whether the sprite has more than one frame.
func (s *Sprite) Animated() bool {
	return len(s.Frames) > 1
}

// Frame returns the frame shown after elapsed seconds of playback.
// Animations loop.
func (s *Sprite) Frame(elapsed float64) [][]rune {
	if !s.Animated() || s.Delay <= 0 || elapsed <= 0 {
		return s.Frames[0]
	}
	idx := int(elapsed/s.Delay) % len(s.Frames)
	return s.Frames[idx]
}

// Mirrored returns the horizontally flipped sprite.
// Directional runes such as '/' and '(' are swapped with their partner.
func (s *Sprite) Mirrored() *Sprite {
	return s.mirror
}

var mirrorRunes = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'd': 'b', 'b': 'd',
	'p': 'q', 'q': 'p',
	'`': '\'',
}

func mirrorRune(r rune) rune {
	if m, ok := mirrorRunes[r]; ok {
		return m
	}
	return r
}

func (s *Sprite) buildMirror() {
	m := &Sprite{
		Name:   s.Name,
		Width:  s.Width,
		Height: s.Height,
		Delay:  s.Delay,
		Color:  s.Color,
		Frames: make([][][]rune, len(s.Frames)),
		mirror: s,
	}
	for i, frame := range s.Frames {
		rows := make([][]rune, len(frame))
		for y, row := range frame {
			out := make([]rune, len(row))
			for x, r := range row {
				out[len(row)-1-x] = mirrorRune(r)
			}
			rows[y] = out
		}
		m.Frames[i] = rows
	}
	s.mirror = m
}

func isComment(line string) bool {
	return line == "#" || strings.HasPrefix(line, "# ")
}

// Parse decodes a sprite file. The name is only used for error messages.
func Parse(name string, data []byte) (*Sprite, error) {
	s := &Sprite{Name: name, Color: core.ColorDefault}

	var frames [][]string
	var current []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case isComment(line):
			continue
		case strings.HasPrefix(line, "@"):
			if err := s.applyDirective(line); err != nil {
				return nil, fmt.Errorf("assets: %s:%d: %w", name, lineNo, err)
			}
			continue
		case strings.TrimSpace(line) == frameSeparator:
			frames = append(frames, current)
			current = nil
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	frames = append(frames, current)

	for i, f := range frames {
		f = trimTrailingBlank(f)
		if len(f) == 0 {
			return nil, fmt.Errorf("assets: %s: frame %d is empty", name, i+1)
		}
		frames[i] = f
		s.Height = core.Max(s.Height, len(f))
		for _, line := range f {
			s.Width = core.Max(s.Width, utf8.RuneCountInString(line))
		}
	}

	s.Frames = make([][][]rune, len(frames))
	for i, f := range frames {
		s.Frames[i] = pad(f, s.Width, s.Height)
	}
	s.buildMirror()
	return s, nil
}

func (s *Sprite) applyDirective(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return fmt.Errorf("directive %q needs exactly one value", line)
	}
	switch fields[0] {
	case "@delay":
		d, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || d < 0 {
			return fmt.Errorf("invalid delay %q", fields[1])
		}
		s.Delay = d
	case "@color":
		c, ok := core.ParseColor(fields[1])
		if !ok {
			return fmt.Errorf("unknown color %q", fields[1])
		}
		s.Color = c
	default:
		return fmt.Errorf("unknown directive %q", fields[0])
	}
	return nil
}

func trimTrailingBlank(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func pad(lines []string, w, h int) [][]rune {
	rows := make([][]rune, h)
	for y := range rows {
		row := make([]rune, w)
		for x := range row {
			row[x] = Transparent
		}
		if y < len(lines) {
			copy(row, []rune(lines[y]))
		}
		rows[y] = row
	}
	return rows
}
