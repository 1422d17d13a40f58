package magicenv

import (
	"sort"
	"sync"

	"github.com/cleitonmarx/magicenv/internal/reflectx"
	"github.com/cleitonmarx/magicenv/introspection"
)

// lookupRecorder tracks guarded lookups and their outcomes for introspection.
type lookupRecorder struct {
	mu      sync.Mutex
	order   int
	lookups []introspection.Lookup
}

func newLookupRecorder() *lookupRecorder {
	return &lookupRecorder{}
}

// record stores a lookup together with the call site found level frames up.
func (r *lookupRecorder) record(l introspection.Lookup, level int) {
	callerFunc, file, line := reflectx.GetCallerName(level + 1)
	l.Caller = introspection.Caller{
		Func: reflectx.FormatFunctionName(callerFunc),
		File: reflectx.FormatFileName(file),
		Line: line,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.order++
	l.Order = r.order
	r.lookups = append(r.lookups, l)
}

// snapshot returns all recorded lookups sorted by key, file and line.
func (r *lookupRecorder) snapshot() []introspection.Lookup {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]introspection.Lookup, len(r.lookups))
	copy(out, r.lookups)
	sort.Stable(byKey(out))
	return out
}

// byKey implements sorting for lookups by key name, then file, then line number.
type byKey []introspection.Lookup

func (k byKey) Len() int { return len(k) }
func (k byKey) Less(i, j int) bool {
	if k[i].Key == k[j].Key {
		if k[i].Caller.File == k[j].Caller.File {
			return k[i].Caller.Line < k[j].Caller.Line
		}
		return k[i].Caller.File < k[j].Caller.File
	}
	return k[i].Key < k[j].Key
}
func (k byKey) Swap(i, j int) { k[i], k[j] = k[j], k[i] }

// IntrospectLookups returns every guarded lookup recorded by e, sorted by key,
// file and line. It returns nil unless e was created WithRecorder.
func (e *Env) IntrospectLookups() []introspection.Lookup {
	if e.recorder == nil {
		return nil
	}
	return e.recorder.snapshot()
}

// Report wraps IntrospectLookups in an introspection.Report.
func (e *Env) Report() introspection.Report {
	return introspection.Report{Lookups: e.IntrospectLookups()}
}

func outcomeOf(v Value, err error) introspection.Outcome {
	switch {
	case err != nil:
		return introspection.OutcomeError
	case v.IsPresent():
		return introspection.OutcomeValue
	case v.IsNull():
		return introspection.OutcomeNull
	default:
		return introspection.OutcomeUndefined
	}
}
