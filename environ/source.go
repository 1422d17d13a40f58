// Package environ provides the variable sources read by guarded lookups.
// A source only reads; it never writes to the environment it wraps.
package environ

import (
	"os"
)

// Source looks up raw environment variable values.
// Implementations can read from the process environment, static maps, secret stores, etc.
type Source interface {
	// Lookup returns the value for name and whether it is set.
	// A variable set to "" reports ("", true).
	Lookup(name string) (string, bool)
}

// SourceWithName is an optional interface for sources that report which
// underlying source supplied a value. Composite implements it.
type SourceWithName interface {
	// LookupWithSource is like Lookup but also returns the supplying source's name.
	LookupWithSource(name string) (string, string, bool)
}

// Process reads variables from the process environment.
// This is the default source if no custom source is set.
type Process struct{}

// NewProcess creates a new process environment source.
func NewProcess() Process {
	return Process{}
}

// Lookup returns the process environment value for name.
func (Process) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// Map is a static source backed by a map. Values read from files, flags or
// other stores can be policed through it.
type Map map[string]string

// Lookup returns the map entry for name.
func (m Map) Lookup(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}
