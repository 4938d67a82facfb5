// Package registry maps game IDs to factories. Games register from init(),
// so commands and the SSH server can start a game by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// Game is the core interface that all games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "corgi").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Courageous Corgi").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	// Config and asset problems are returned; they are fatal at startup.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one tick.
	// Input carries the held keys, the elapsed time and one-shot actions.
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("unknown game")

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. The factory is called once to
// read the title. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title()},
	}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Lookup returns the metadata of a registered game without creating it.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game is registered under id.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
