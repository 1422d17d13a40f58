package magicenv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration matches every InvalidConfigurationError.
	ErrInvalidConfiguration = errors.New("magicenv: invalid configuration")
	// ErrRequired matches policy errors raised for missing variables.
	ErrRequired = errors.New("magicenv: required environment variable is missing")
	// ErrEmpty matches policy errors raised for empty variables.
	ErrEmpty = errors.New("magicenv: environment variable is empty")
)

// InvalidConfigurationError reports a value rejected by a setting's validator.
// The configuration is left unchanged when it is returned.
type InvalidConfigurationError struct {
	Setting string
	Value   any
}

// Error returns "<value> is invalid for <setting>!" for policy settings and
// "<setting> is invalid!" for the others.
func (e *InvalidConfigurationError) Error() string {
	switch e.Setting {
	case SettingOnMissing, SettingOnEmpty:
		return fmt.Sprintf("%v is invalid for %s!", e.Value, e.Setting)
	default:
		return fmt.Sprintf("%s is invalid!", e.Setting)
	}
}

// Is makes errors.Is(err, ErrInvalidConfiguration) succeed.
func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// VariableError is returned by a guarded lookup whose policy is ActionError.
// Its message is exactly the one built for the event, e.g.
// `The environment variable "PORT" is required!`.
type VariableError struct {
	Event   Event
	Message string
}

func (e *VariableError) Error() string {
	return e.Message
}

// Is matches ErrRequired for OnMissing and ErrEmpty for OnEmpty.
func (e *VariableError) Is(target error) bool {
	switch e.Event {
	case OnMissing:
		return target == ErrRequired
	case OnEmpty:
		return target == ErrEmpty
	}
	return false
}

func missingMessage(name string) string {
	return fmt.Sprintf(`The environment variable "%s" is required!`, name)
}

func emptyMessage(name string) string {
	return fmt.Sprintf(`The environment variable "%s" is empty!`, name)
}
