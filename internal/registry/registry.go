// Package registry maps game IDs to factories so the front ends can build
// a fresh game per session without importing the game package.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// Game is the simulation surface every front end drives.
type Game interface {
	// ID is the registry key and the scores table key.
	ID() string
	Title() string

	// Reset puts the game back on its start screen. It is called once per
	// session and again on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt of simulated time, applying the
	// presses and releases collected since the previous frame.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws into a pre-cleared cell screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory builds a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
