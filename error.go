// FILE: lixenwraith/settings/error.go
package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every value, shape or policy violation
	ErrConfiguration = errors.New("configuration error")

	// ErrModuleNotFound is returned by resolvers when a dotted settings path
	// does not name a known settings module
	ErrModuleNotFound = errors.New("settings module not found")

	// ErrDeploymentNotFound indicates the deployment file does not exist
	ErrDeploymentNotFound = errors.New("deployment file not found")

	// ErrAppNotFound indicates the requested application section is missing
	ErrAppNotFound = errors.New("application section not found")
)

// ConfigurationError describes why a single setting was rejected.
// Key is empty for errors that do not concern one setting.
type ConfigurationError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Key != "" {
		msg = fmt.Sprintf("setting %q: %s", e.Key, e.Reason)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

// Is makes every ConfigurationError match ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// configErrorf builds a ConfigurationError for key with a formatted reason
func configErrorf(key, format string, args ...any) error {
	return &ConfigurationError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

// wrapConfigError attaches key to a cause, keeping an inner key if one is set
func wrapConfigError(key string, err error) error {
	var ce *ConfigurationError
	if errors.As(err, &ce) && ce.Key == "" {
		return &ConfigurationError{Key: key, Reason: ce.Reason, Err: ce.Err}
	}
	return &ConfigurationError{Key: key, Reason: "invalid value", Err: err}
}

// LookupError is returned by resolvers for dotted paths that cannot be
// resolved. It matches ErrModuleNotFound.
type LookupError struct {
	Path string
	Err  error
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no settings module named %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("no settings module named %q", e.Path)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrModuleNotFound
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
