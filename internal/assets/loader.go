package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed sprites/*.txt
var builtin embed.FS

// SpriteExt is the extension of sprite files.
const SpriteExt = ".txt"

// Loader loads sprites by path from a file system and caches them.
// Safe for concurrent use; SSH sessions share the default loader.
type Loader struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache map[string]*Sprite
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, cache: make(map[string]*Sprite)}
}

var (
	defaultOnce   sync.Once
	defaultLoader *Loader
)

// Default returns the loader for the embedded sprite set.
func Default() *Loader {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(builtin, "sprites")
		if err != nil {
			panic(fmt.Sprintf("assets: embedded sprites: %v", err))
		}
		defaultLoader = NewLoader(sub)
	})
	return defaultLoader
}

// FromDir creates a loader reading sprites from a directory on disk.
func FromDir(dir string) (*Loader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	return NewLoader(os.DirFS(dir)), nil
}

// Load returns the sprite stored at p. Results are cached by path.
func (l *Loader) Load(p string) (*Sprite, error) {
	p = path.Clean(strings.TrimPrefix(p, "/"))

	l.mu.Lock()
	defer l.mu.Unlock()

	if s, ok := l.cache[p]; ok {
		return s, nil
	}

	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", p, err)
	}
	s, err := Parse(p, data)
	if err != nil {
		return nil, err
	}
	l.cache[p] = s
	return s, nil
}

// Paths lists every sprite file in the loader, sorted.
func (l *Loader) Paths() ([]string, error) {
	var paths []string
	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), SpriteExt) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: walk: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}
