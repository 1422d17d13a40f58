// Package magicenv provides guarded access to environment variables.
// Lookups go through an Env accessor that applies a configurable policy when a
// variable is missing or empty, so access failures are intentional and handled
// in one place instead of leaking empty strings into business logic.
package magicenv

import (
	"slices"

	"github.com/samber/lo"
)

// Action is the policy applied when a guarded condition is detected.
type Action string

const (
	// ActionError fails the lookup with an error carrying the policy message.
	ActionError Action = "error"
	// ActionWarn passes the message to the configured Logger and returns Undefined.
	ActionWarn Action = "warn"
	// ActionNull returns the Null sentinel.
	ActionNull Action = "null"
	// ActionUndefined returns the Undefined sentinel.
	ActionUndefined Action = "undefined"
)

var actions = []Action{ActionError, ActionWarn, ActionNull, ActionUndefined}

// Actions returns the valid policy actions in declaration order.
func Actions() []Action {
	return slices.Clone(actions)
}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	return lo.Contains(actions, a)
}

func (a Action) String() string {
	return string(a)
}

// Event identifies the guarded condition a policy applies to.
type Event string

const (
	// OnMissing fires when the variable is absent from the environment.
	OnMissing Event = "onMissing"
	// OnEmpty fires when the variable is set to an empty string.
	OnEmpty Event = "onEmpty"
)

func (e Event) String() string {
	return string(e)
}

// Setting names accepted by Configuration.Get and Configuration.Set.
const (
	SettingOnMissing = string(OnMissing)
	SettingOnEmpty   = string(OnEmpty)
	SettingLogger    = "logger"
	SettingOptional  = "optional"
)
