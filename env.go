// FILE: lixenwraith/settings/env.go
package settings

import "os"

// DefaultEnvVar names the settings module for the framework at startup
const DefaultEnvVar = "DJANGO_SETTINGS_MODULE"

// Environment is the process environment as seen by SetUp
type Environment interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
}

// OSEnvironment is the real process environment
type OSEnvironment struct{}

func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnvironment) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

func (OSEnvironment) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

// MapEnvironment is an in-memory Environment, mostly for tests
type MapEnvironment map[string]string

func (e MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

func (e MapEnvironment) Setenv(key, value string) error {
	e[key] = value
	return nil
}

func (e MapEnvironment) Unsetenv(key string) error {
	delete(e, key)
	return nil
}
