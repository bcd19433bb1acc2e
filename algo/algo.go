// Package algo holds the registry of diff algorithms available to the
// benchmark harness. Algorithms register themselves by name, usually from an
// init function, and are treated by the harness as opaque units of work.
package algo

import (
	"fmt"
	"sort"
)

// Func computes the difference between two ordered element collections and
// reports how many edit operations it produced. The harness never inspects
// the result beyond surfacing it in logs; the count exists so a run cannot be
// optimized away.
type Func func(old, new []string) (int, error)

var registry = make(map[string]Func)

// Register registers a diff algorithm with a name. Registration happens
// before a run starts; later registrations with the same name replace
// earlier ones.
func Register(name string, fn Func) {
	registry[name] = fn
}

// Get returns the registered algorithm by name.
func Get(name string) (Func, error) {
	if fn, ok := registry[name]; ok {
		return fn, nil
	}
	return nil, fmt.Errorf("diff algorithm %q not found", name)
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
