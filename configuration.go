package magicenv

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cleitonmarx/magicenv/internal/reflectx"
	"github.com/samber/lo"
)

// Options seeds a Configuration. Zero fields take their defaults: ActionError
// for both events, DefaultLogger and no optional variables.
type Options struct {
	OnMissing Action
	OnEmpty   Action
	Logger    Logger
	Optional  []string
}

// Configuration holds the policy consulted by every guarded lookup.
// It is safe for concurrent use; a lookup sees whatever the configuration
// holds at the moment it runs.
type Configuration struct {
	mu        sync.RWMutex
	onMissing Action
	onEmpty   Action
	logger    Logger
	optional  []string
	// extra holds values written under names that have no validator.
	extra map[string]any
}

// New creates a Configuration, validating every field provided in opts.
func New(opts Options) (*Configuration, error) {
	c := &Configuration{
		onMissing: ActionError,
		onEmpty:   ActionError,
		logger:    DefaultLogger,
		optional:  []string{},
	}
	if opts.OnMissing != "" {
		if err := c.SetOnMissing(opts.OnMissing); err != nil {
			return nil, err
		}
	}
	if opts.OnEmpty != "" {
		if err := c.SetOnEmpty(opts.OnEmpty); err != nil {
			return nil, err
		}
	}
	if opts.Logger != nil {
		if err := c.SetLogger(opts.Logger); err != nil {
			return nil, err
		}
	}
	if opts.Optional != nil {
		c.SetOptional(opts.Optional...)
	}
	return c, nil
}

// MustNew is like New but panics on an invalid option.
func MustNew(opts Options) *Configuration {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the current value of a named setting. Policy settings come back
// as Action, the logger as Logger and the optional list as a copied []string.
// Names without a validator return whatever Set stored for them, or nil.
func (c *Configuration) Get(name string) any {
	switch name {
	case SettingOnMissing:
		return c.OnMissing()
	case SettingOnEmpty:
		return c.OnEmpty()
	case SettingLogger:
		return c.Logger()
	case SettingOptional:
		return c.Optional()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.extra[name]
}

// Set validates value against the rule for name and stores it.
//
//   - onMissing, onEmpty: an Action or string naming one of Actions().
//   - logger: a non-nil Logger or func(...string).
//   - optional: a []string, or a []any holding only strings.
//
// Names without a rule are stored unchecked; they have no effect on lookups.
// A rejected value returns *InvalidConfigurationError and leaves the
// configuration unchanged.
func (c *Configuration) Set(name string, value any) error {
	switch name {
	case SettingOnMissing, SettingOnEmpty:
		action, ok := toAction(value)
		if !ok {
			return &InvalidConfigurationError{Setting: name, Value: value}
		}
		if name == SettingOnMissing {
			return c.SetOnMissing(action)
		}
		return c.SetOnEmpty(action)
	case SettingLogger:
		logger, ok := toLogger(value)
		if !ok {
			return &InvalidConfigurationError{Setting: name, Value: value}
		}
		return c.SetLogger(logger)
	case SettingOptional:
		optional, ok := toStrings(value)
		if !ok {
			return &InvalidConfigurationError{Setting: name, Value: value}
		}
		c.SetOptional(optional...)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.extra == nil {
		c.extra = make(map[string]any)
	}
	c.extra[name] = value
	return nil
}

// OnMissing returns the action applied to absent variables.
func (c *Configuration) OnMissing() Action {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onMissing
}

// SetOnMissing sets the action applied to absent variables.
func (c *Configuration) SetOnMissing(a Action) error {
	if !a.Valid() {
		return &InvalidConfigurationError{Setting: SettingOnMissing, Value: a}
	}
	c.mu.Lock()
	c.onMissing = a
	c.mu.Unlock()
	return nil
}

// OnEmpty returns the action applied to variables set to "".
func (c *Configuration) OnEmpty() Action {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.onEmpty
}

// SetOnEmpty sets the action applied to variables set to "".
func (c *Configuration) SetOnEmpty(a Action) error {
	if !a.Valid() {
		return &InvalidConfigurationError{Setting: SettingOnEmpty, Value: a}
	}
	c.mu.Lock()
	c.onEmpty = a
	c.mu.Unlock()
	return nil
}

// Logger returns the logger used by ActionWarn.
func (c *Configuration) Logger() Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

// SetLogger replaces the logger used by ActionWarn.
func (c *Configuration) SetLogger(l Logger) error {
	if l == nil {
		return &InvalidConfigurationError{Setting: SettingLogger, Value: l}
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
	return nil
}

// Optional returns a copy of the variable names exempt from the missing policy.
func (c *Configuration) Optional() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.optional)
}

// SetOptional replaces the list of variable names exempt from the missing
// policy. Order is kept but does not matter for membership.
func (c *Configuration) SetOptional(names ...string) {
	optional := append([]string{}, names...)
	c.mu.Lock()
	c.optional = optional
	c.mu.Unlock()
}

// IsOptional reports whether name is exempt from the missing policy.
func (c *Configuration) IsOptional(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lo.Contains(c.optional, name)
}

// Normalize applies the action configured for event. ActionError returns a
// *VariableError carrying message, ActionWarn logs message and returns
// Undefined, ActionNull and ActionUndefined return their sentinel.
//
// It is the same policy Env.Get applies and can be used to police values
// obtained from other sources.
func (c *Configuration) Normalize(event Event, message string) (Value, error) {
	v, _, err := c.normalize(event, message)
	return v, err
}

// normalize is Normalize that also reports the action it applied.
func (c *Configuration) normalize(event Event, message string) (Value, Action, error) {
	var action Action
	switch event {
	case OnMissing:
		action = c.OnMissing()
	case OnEmpty:
		action = c.OnEmpty()
	default:
		return Undefined, "", &InvalidConfigurationError{Setting: "event", Value: event}
	}

	switch action {
	case ActionError:
		return Undefined, action, &VariableError{Event: event, Message: message}
	case ActionWarn:
		c.Logger()(message)
	case ActionNull:
		return Null, action, nil
	}
	return Undefined, action, nil
}

func toAction(value any) (Action, bool) {
	var action Action
	switch v := value.(type) {
	case Action:
		action = v
	case string:
		action = Action(v)
	case fmt.Stringer:
		action = Action(v.String())
	default:
		return "", false
	}
	return action, action.Valid()
}

// toLogger accepts any non-nil function with the Logger signature.
func toLogger(value any) (Logger, bool) {
	return reflectx.ConvertFunc[Logger](value)
}

func toStrings(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		if !lo.EveryBy(v, func(item any) bool { _, ok := item.(string); return ok }) {
			return nil, false
		}
		return lo.Map(v, func(item any, _ int) string { return item.(string) }), true
	}
	return nil, false
}
