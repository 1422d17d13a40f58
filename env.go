package magicenv

import (
	"github.com/cleitonmarx/magicenv/environ"
	"github.com/cleitonmarx/magicenv/introspection"
)

// Env is a guarded, read-only view over an environment source. Every lookup
// consults the Configuration it was built with, so policy changes made through
// that Configuration apply to the next lookup.
type Env struct {
	cfg      *Configuration
	source   environ.Source
	recorder *lookupRecorder
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithSource replaces the process environment with s.
func WithSource(s environ.Source) EnvOption {
	return func(e *Env) {
		if s != nil {
			e.source = s
		}
	}
}

// WithRecorder records every lookup for IntrospectLookups and Report.
func WithRecorder() EnvOption {
	return func(e *Env) {
		e.recorder = newLookupRecorder()
	}
}

// NewEnv creates an accessor bound to cfg. A nil cfg gets a default Configuration.
func NewEnv(cfg *Configuration, opts ...EnvOption) *Env {
	if cfg == nil {
		cfg = MustNew(Options{})
	}
	e := &Env{
		cfg:    cfg,
		source: environ.NewProcess(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configuration returns the configuration consulted by e.
func (e *Env) Configuration() *Configuration {
	return e.cfg
}

// Get looks name up and applies the configured policy:
//
//   - absent and not optional: the onMissing action, with the message
//     `The environment variable "<name>" is required!`;
//   - set to "": the onEmpty action, with the message
//     `The environment variable "<name>" is empty!`, even for optional names;
//   - otherwise the raw value.
//
// An optional name that is absent returns Undefined without applying any policy.
// The error, when returned, is a *VariableError.
func (e *Env) Get(name string) (Value, error) {
	return e.get(name)
}

// MustGet is like Get but panics when the policy returns an error.
func (e *Env) MustGet(name string) Value {
	v, err := e.get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// String is like Get but returns "" in place of either sentinel.
func (e *Env) String(name string) (string, error) {
	v, err := e.get(name)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Normalize applies the configured policy for event to message. See
// Configuration.Normalize.
func (e *Env) Normalize(event Event, message string) (Value, error) {
	v, _, err := e.cfg.normalize(event, message)
	return v, err
}

func (e *Env) get(name string) (Value, error) {
	raw, sourceName, found := environ.LookupWithSource(e.source, name)
	optional := e.cfg.IsOptional(name)

	var (
		event  Event
		action Action
		value  Value
		err    error
	)
	switch {
	case !found && !optional:
		event = OnMissing
		value, action, err = e.cfg.normalize(OnMissing, missingMessage(name))
	case found && raw == "":
		event = OnEmpty
		value, action, err = e.cfg.normalize(OnEmpty, emptyMessage(name))
	case found:
		value = StringValue(raw)
	default:
		// Optional and absent: the absence itself is returned, unpoliced.
		value = Undefined
	}

	if e.recorder != nil {
		// Frames above record: get, the exported accessor, its caller.
		e.recorder.record(introspection.Lookup{
			Key:      name,
			Source:   sourceName,
			Event:    string(event),
			Action:   string(action),
			Optional: optional,
			Outcome:  outcomeOf(value, err),
		}, 3)
	}
	return value, err
}
