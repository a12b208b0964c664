package module

import (
	"fmt"
	"sort"
	"sync"

	doerrors "github.com/digitalocean/ansible-collection-sub001/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Module)
)

// Register adds a module implementation for the provided name.
func Register(name string, m Module) error {
	if m == nil {
		return doerrors.NewModuleError(name, fmt.Errorf("module is nil"))
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return doerrors.NewModuleError(name, fmt.Errorf("module already registered"))
	}

	registry[name] = m
	return nil
}

// Get retrieves a module by name.
func Get(name string) (Module, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	m, ok := registry[name]
	if !ok {
		return nil, doerrors.NewModuleError(name, fmt.Errorf("no module registered"))
	}

	return m, nil
}

// Names returns the registered module names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResetRegistry clears module registrations (for tests).
func ResetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Module)
}
