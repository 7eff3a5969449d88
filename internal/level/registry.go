// Package level names the playable maps: embedded levels, map files found on
// disk and the procedural maze and cave.
package level

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"gridcaster/internal/core"
)

// ErrUnknownLevel reports a name with no registered factory.
var ErrUnknownLevel = errors.New("unknown level")

// Factory builds a level grid using an optional configuration map.
type Factory func(cfg map[string]string) (*core.Grid, error)

var (
	mu     sync.RWMutex
	levels = map[string]Factory{}
)

// Register adds a level factory under the provided name, replacing any
// previous registration.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	levels[name] = f
}

// Levels exposes a copy of the registry.
func Levels() map[string]Factory {
	mu.RLock()
	defer mu.RUnlock()
	out := make(map[string]Factory, len(levels))
	for k, v := range levels {
		out[k] = v
	}
	return out
}

// Names returns the registered level names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open builds the named level.
func Open(name string, cfg map[string]string) (*core.Grid, error) {
	mu.RLock()
	f, ok := levels[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, name)
	}
	g, err := f(cfg)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return g, nil
}
