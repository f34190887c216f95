package sixelterm

import (
	"fmt"
	"sort"
	"sync"
)

// AdapterFactory hooks a host integration (a plotting library bridge,
// a notebook display broker) up to a Display. Factories are recorded
// by name and run once, when the session's Display is attached.
type AdapterFactory func(d *Display) error

var adapters struct {
	mu      sync.Mutex
	byName  map[string]AdapterFactory
	applied bool
}

// RegisterAdapter records a named adapter factory, usually from an
// init function of an integration package. Registering a name twice
// replaces the earlier factory.
func RegisterAdapter(name string, factory AdapterFactory) {
	adapters.mu.Lock()
	defer adapters.mu.Unlock()
	if adapters.byName == nil {
		adapters.byName = make(map[string]AdapterFactory)
	}
	adapters.byName[name] = factory
}

// Adapters lists the registered adapter names, sorted.
func Adapters() []string {
	adapters.mu.Lock()
	defer adapters.mu.Unlock()
	names := make([]string, 0, len(adapters.byName))
	for name := range adapters.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AttachAdapters runs every registered factory against d. A failing
// factory does not stop the others; the first failure is returned.
func AttachAdapters(d *Display) error {
	adapters.mu.Lock()
	factories := make(map[string]AdapterFactory, len(adapters.byName))
	for name, f := range adapters.byName {
		factories[name] = f
	}
	adapters.mu.Unlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)

	var firstErr error
	for _, name := range names {
		if err := factories[name](d); err != nil {
			tlog.Printf("adapter %s failed to attach: %v", name, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("attach adapter %s: %w", name, err)
			}
		}
	}
	return firstErr
}
