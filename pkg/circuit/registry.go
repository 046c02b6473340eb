package circuit

import "fmt"

// BuildFunc constructs a circuit from scratch. Definitions register one of
// these so the build tool can iterate every circuit in the project.
type BuildFunc func() *Circuit

// Entry is one registered circuit definition.
type Entry struct {
	Name        string
	Description string
	Build       BuildFunc
}

var registry []Entry

// Register adds a circuit definition to the build set. Registration order
// is preserved so builds are deterministic. Duplicate names panic at init
// time, before any build runs.
func Register(name, description string, build BuildFunc) {
	for _, e := range registry {
		if e.Name == name {
			panic(fmt.Sprintf("circuit %q registered twice", name))
		}
	}
	registry = append(registry, Entry{Name: name, Description: description, Build: build})
}

// Registered returns all registered circuit definitions in registration order.
func Registered() []Entry {
	out := make([]Entry, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the registered definition with the given name.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
