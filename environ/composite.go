package environ

import (
	"github.com/cleitonmarx/magicenv/internal/reflectx"
)

// namedSource wraps a Source with its type name for lookup reports.
type namedSource struct {
	Source Source
	Name   string
}

// Composite chains multiple sources and returns the first one that has the variable.
// Useful for fallback scenarios, e.g., process environment with a static defaults map.
type Composite struct {
	sources []namedSource
}

// NewComposite creates a source that tries each source in order until one has the variable.
func NewComposite(sources ...Source) Composite {
	namedSources := make([]namedSource, len(sources))
	for i, s := range sources {
		namedSources[i] = namedSource{
			Source: s,
			Name:   reflectx.TypeNameOf(s),
		}
	}
	return Composite{
		sources: namedSources,
	}
}

// Lookup retrieves a variable from the first source that has it.
// A variable set to "" in an earlier source wins over later sources.
func (c Composite) Lookup(name string) (string, bool) {
	value, _, ok := c.LookupWithSource(name)
	return value, ok
}

// LookupWithSource retrieves a variable and reports which source provided it.
func (c Composite) LookupWithSource(name string) (string, string, bool) {
	for _, source := range c.sources {
		if value, ok := source.Source.Lookup(name); ok {
			return value, source.Name, true
		}
	}
	return "", "", false
}

// LookupWithSource looks name up in s and reports the supplying source's name.
// Sources implementing SourceWithName report their own; others report their type name.
func LookupWithSource(s Source, name string) (string, string, bool) {
	if sws, ok := s.(SourceWithName); ok {
		return sws.LookupWithSource(name)
	}
	value, ok := s.Lookup(name)
	if !ok {
		return "", "", false
	}
	return value, reflectx.TypeNameOf(s), true
}
