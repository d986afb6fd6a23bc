// Package registry provides a global registry for game hosts (backends).
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/games/snake3d"
)

// Backend hosts the game loop: it owns the frame clock, collects input
// and displays the scene.
type Backend interface {
	// ID returns a unique identifier for this backend (e.g., "tui").
	// Used for the --backend flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the player quits, the script ends or ctx is cancelled.
	Run(ctx context.Context, opts Options) error
}

// Options carries everything a backend needs to run one game.
type Options struct {
	Engine       snake3d.Config
	Runtime      core.RuntimeConfig
	Presentation config.PresentationConfig
	FOV          float64

	Logger *log.Logger
	Out    io.Writer // Summary output for non-interactive backends

	// Non-interactive runs
	Frames    int                   // Number of frames; 0 means until quit
	FrameStep int                   // Milliseconds per simulated frame
	Script    map[int][]core.Action // Key presses keyed by frame index
}

// Info contains metadata about a registered backend.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new backend by its ID.
// Returns an error if the backend ID is not registered.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
