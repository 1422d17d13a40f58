package magicenv

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/cleitonmarx/magicenv/environ"
)

// Bootstrap variables read by FromEnvironment.
const (
	EnvOnMissing = "MAGIC_ENV_ON_MISSING"
	EnvOnEmpty   = "MAGIC_ENV_ON_EMPTY"
	EnvOptional  = "MAGIC_ENV_OPTIONAL"
)

// bootstrapEnv maps the list variable. The action variables are looked up
// directly so that a variable set to "" is told apart from an unset one.
type bootstrapEnv struct {
	Optional []string `env:"MAGIC_ENV_OPTIONAL" envSeparator:","`
}

type bootstrapOptions struct {
	environment map[string]string
	logger      Logger
}

func (o bootstrapOptions) source() environ.Source {
	if o.environment != nil {
		return environ.Map(o.environment)
	}
	return environ.NewProcess()
}

// BootstrapOption configures FromEnvironment.
type BootstrapOption func(*bootstrapOptions)

// WithBootstrapEnvironment reads the bootstrap variables from vars instead of
// the process environment.
func WithBootstrapEnvironment(vars map[string]string) BootstrapOption {
	return func(o *bootstrapOptions) {
		o.environment = vars
	}
}

// WithBootstrapLogger sets the initial Logger.
func WithBootstrapLogger(l Logger) BootstrapOption {
	return func(o *bootstrapOptions) {
		o.logger = l
	}
}

// FromEnvironment creates a Configuration seeded from MAGIC_ENV_ON_MISSING,
// MAGIC_ENV_ON_EMPTY and the comma separated MAGIC_ENV_OPTIONAL. Unset action
// variables keep the defaults; a set one, including "", must name a valid
// action or FromEnvironment fails with *InvalidConfigurationError.
func FromEnvironment(opts ...BootstrapOption) (*Configuration, error) {
	var o bootstrapOptions
	for _, opt := range opts {
		opt(&o)
	}

	vars, err := env.ParseAsWithOptions[bootstrapEnv](env.Options{
		Environment: o.environment,
	})
	if err != nil {
		return nil, fmt.Errorf("magicenv: parse bootstrap variables: %w", err)
	}

	cfg, err := New(Options{
		Logger:   o.logger,
		Optional: vars.Optional,
	})
	if err != nil {
		return nil, err
	}

	source := o.source()
	for _, action := range []struct {
		name string
		set  func(Action) error
	}{
		{name: EnvOnMissing, set: cfg.SetOnMissing},
		{name: EnvOnEmpty, set: cfg.SetOnEmpty},
	} {
		value, ok := source.Lookup(action.name)
		if !ok {
			continue
		}
		if err := action.set(Action(value)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// MustFromEnvironment is like FromEnvironment but panics on error.
// Intended for process startup.
func MustFromEnvironment(opts ...BootstrapOption) *Configuration {
	c, err := FromEnvironment(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
