// Package introspection describes the guarded lookups recorded by an accessor.
package introspection

import (
	"encoding/json"

	"github.com/samber/lo"
)

// Report aggregates the recorded lookups of an accessor.
type Report struct {
	Lookups []Lookup `json:"lookups"`
}

// Lookup captures a single guarded environment variable lookup.
type Lookup struct {
	Key      string  `json:"key"`
	Source   string  `json:"source"`
	Event    string  `json:"event,omitempty"`  // onMissing or onEmpty, empty when the value was used as-is
	Action   string  `json:"action,omitempty"` // action applied for Event
	Optional bool    `json:"optional"`
	Outcome  Outcome `json:"outcome"`
	Caller   Caller  `json:"caller"`
	Order    int     `json:"order"` // monotonic order of lookups within the accessor
}

// Outcome describes what a lookup returned to its caller.
type Outcome string

const (
	// OutcomeValue means the raw value was returned unchanged.
	OutcomeValue Outcome = "value"
	// OutcomeNull means the null action returned the Null sentinel.
	OutcomeNull Outcome = "null"
	// OutcomeUndefined means Undefined was returned, by a policy or for an absent optional key.
	OutcomeUndefined Outcome = "undefined"
	// OutcomeError means the error action failed the lookup.
	OutcomeError Outcome = "error"
)

// Caller identifies the code location that performed a lookup.
type Caller struct {
	Func string `json:"func"`
	File string `json:"file"`
	Line int    `json:"line"`
}

// Keys returns the distinct keys looked up, in first-lookup order.
func (r Report) Keys() []string {
	return lo.Uniq(lo.Map(r.Lookups, func(l Lookup, _ int) string { return l.Key }))
}

// Policed returns the lookups that triggered a policy event.
func (r Report) Policed() []Lookup {
	return lo.Filter(r.Lookups, func(l Lookup, _ int) bool { return l.Event != "" })
}

// MarshalJSON implements the json.Marshaler interface for Report.
// A report without lookups marshals its list as [] rather than null.
func (r Report) MarshalJSON() ([]byte, error) {
	type report Report
	if r.Lookups == nil {
		r.Lookups = []Lookup{}
	}
	return json.Marshal(report(r))
}
