package magicenv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment(t *testing.T) {
	tests := map[string]struct {
		vars          map[string]string
		wantOnMissing Action
		wantOnEmpty   Action
		wantOptional  []string
		expectedErr   string
	}{
		"defaults": {
			vars:          map[string]string{},
			wantOnMissing: ActionError,
			wantOnEmpty:   ActionError,
			wantOptional:  []string{},
		},
		"all_variables": {
			vars: map[string]string{
				EnvOnMissing: "null",
				EnvOnEmpty:   "warn",
				EnvOptional:  "OPTIONAL,EMPTY",
			},
			wantOnMissing: ActionNull,
			wantOnEmpty:   ActionWarn,
			wantOptional:  []string{"OPTIONAL", "EMPTY"},
		},
		"empty_on_missing": {
			vars:        map[string]string{EnvOnMissing: ""},
			expectedErr: " is invalid for onMissing!",
		},
		"empty_on_empty": {
			vars:        map[string]string{EnvOnEmpty: ""},
			expectedErr: " is invalid for onEmpty!",
		},
		"optional_is_split_without_trimming": {
			vars:          map[string]string{EnvOptional: "A, B,C"},
			wantOnMissing: ActionError,
			wantOnEmpty:   ActionError,
			wantOptional:  []string{"A", " B", "C"},
		},
		"invalid_on_missing": {
			vars:        map[string]string{EnvOnMissing: "bogus"},
			expectedErr: "bogus is invalid for onMissing!",
		},
		"invalid_on_empty": {
			vars:        map[string]string{EnvOnEmpty: "throw"},
			expectedErr: "throw is invalid for onEmpty!",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := FromEnvironment(WithBootstrapEnvironment(tt.vars))
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				var invalid *InvalidConfigurationError
				assert.True(t, errors.As(err, &invalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOnMissing, c.OnMissing())
			assert.Equal(t, tt.wantOnEmpty, c.OnEmpty())
			assert.Equal(t, tt.wantOptional, c.Optional())
		})
	}
}

func TestFromEnvironment_processEnvironment(t *testing.T) {
	t.Setenv(EnvOnMissing, "undefined")
	t.Setenv(EnvOptional, "A")

	c, err := FromEnvironment()
	require.NoError(t, err)
	assert.Equal(t, ActionUndefined, c.OnMissing())
	assert.True(t, c.IsOptional("A"))
}

func TestFromEnvironment_processEnvironmentEmptyAction(t *testing.T) {
	t.Setenv(EnvOnEmpty, "")

	_, err := FromEnvironment()
	assert.EqualError(t, err, " is invalid for onEmpty!")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestFromEnvironment_optionalSplit(t *testing.T) {
	c, err := FromEnvironment(WithBootstrapEnvironment(map[string]string{EnvOptional: "A, B"}))
	require.NoError(t, err)

	assert.True(t, c.IsOptional("A"))
	assert.True(t, c.IsOptional(" B"))
	assert.False(t, c.IsOptional("B"))
}

func TestFromEnvironment_logger(t *testing.T) {
	spy := &loggerSpy{}
	c, err := FromEnvironment(
		WithBootstrapEnvironment(map[string]string{EnvOnMissing: "warn"}),
		WithBootstrapLogger(spy.log),
	)
	require.NoError(t, err)

	_, err = NewEnv(c, WithSource(testEnvironment)).Get("MISSING")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{`The environment variable "MISSING" is required!`}}, spy.calls)
}

func TestMustFromEnvironment(t *testing.T) {
	assert.NotPanics(t, func() {
		MustFromEnvironment(WithBootstrapEnvironment(map[string]string{}))
	})
	assert.Panics(t, func() {
		MustFromEnvironment(WithBootstrapEnvironment(map[string]string{EnvOnEmpty: "bogus"}))
	})
}
