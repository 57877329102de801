// Package registry provides a global catalog of game modes. Modes
// register themselves in init() functions, so the platform discovers
// and instantiates them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arcadekit/arkanoid/internal/core"
)

// Game is the contract every playable mode implements. Games contain
// pure logic with no external dependencies (especially no Bubble Tea);
// the platform handles input mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier for this mode (e.g. "arkanoid").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the session. Called once at start
	// and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick with the actions
	// held during that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the catalog. Typically called from a
// mode's init() function. Registering the same ID twice is a
// programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a mode by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
