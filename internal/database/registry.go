package database

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates an unconnected Driver.
type Factory func() Driver

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a driver available under name. Engine packages call it
// from init. Registering the same name twice panics.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("database: Register factory is nil")
	}
	if _, dup := registry[name]; dup {
		panic("database: Register called twice for driver " + name)
	}
	registry[name] = factory
}

// New creates a Driver registered under name.
func New(name string) (Driver, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown driver %q (registered: %v)", name, Drivers())
	}
	return factory(), nil
}

// Drivers returns the sorted names of the registered drivers.
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
