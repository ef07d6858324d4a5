// FILE: lixenwraith/settings/setup.go
package settings

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ModuleKey is the global key naming the settings module to configure
const ModuleKey = "django_settings_module"

// SetupOptions configures SetUp
type SetupOptions struct {
	// Resolver finds the settings module. Required.
	Resolver Resolver

	// Converter coerces the raw values; nil uses the default catalog
	Converter *Converter

	// Environment receives EnvVar; nil uses the process environment
	Environment Environment

	// EnvVar names the settings module for the framework.
	// Default: DefaultEnvVar
	EnvVar string

	// RestoreEnv puts back the previous EnvVar value once merging is done.
	// Failed setups restore it regardless.
	RestoreEnv bool

	// Merge is passed to Merge; DebugSetting is always authoritative
	Merge MergeOptions

	// Logger receives one warning per dropped setting. Default: no-op.
	Logger *zerolog.Logger
}

// Result is the outcome of SetUp
type Result struct {
	ModulePath string
	Namespace  Namespace
	Settings   *Settings
	Warnings   []Warning
}

// SetUp converts global and local, publishes the settings module path in the
// environment, resolves the module and merges the settings into it.
//
// A missing module key fails before anything is resolved. Resolver errors
// are returned as they are. The environment variable stays set after a
// successful setup unless RestoreEnv is true; a failed setup always puts
// back its previous value.
func SetUp(global, local map[string]any, opts SetupOptions) (*Result, error) {
	if opts.Resolver == nil {
		return nil, fmt.Errorf("setup requires a resolver")
	}

	raw, ok := global[ModuleKey]
	if !ok {
		return nil, configErrorf(ModuleKey, "is required in the global configuration")
	}
	modulePath, ok := raw.(string)
	if !ok || strings.TrimSpace(modulePath) == "" {
		return nil, configErrorf(ModuleKey, "must name a settings module, got %v", raw)
	}
	modulePath = strings.TrimSpace(modulePath)

	converter := opts.Converter
	if converter == nil {
		converter = NewConverter(nil)
	}
	settings, err := converter.Convert(global, local)
	if err != nil {
		return nil, err
	}

	env := opts.Environment
	if env == nil {
		env = OSEnvironment{}
	}
	envVar := opts.EnvVar
	if envVar == "" {
		envVar = DefaultEnvVar
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	previous, hadPrevious := env.LookupEnv(envVar)
	if err := env.Setenv(envVar, modulePath); err != nil {
		return nil, fmt.Errorf("failed to set %s: %w", envVar, err)
	}
	configured := false
	defer func() {
		if configured && !opts.RestoreEnv {
			return
		}
		var err error
		if hadPrevious {
			err = env.Setenv(envVar, previous)
		} else {
			err = env.Unsetenv(envVar)
		}
		if err != nil {
			logger.Error().Err(err).Str("var", envVar).Msg("failed to restore environment")
		}
	}()

	ns, err := opts.Resolver.Resolve(modulePath)
	if err != nil {
		return nil, err
	}

	mergeOpts := MergeOptions{
		Reserved:      opts.Merge.Reserved,
		Authoritative: NameSet(DebugSetting),
	}
	for name := range opts.Merge.Authoritative {
		mergeOpts.Authoritative[name] = true
	}

	warnings, err := Merge(ns, settings, mergeOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to merge settings into %s: %w", modulePath, err)
	}
	for _, w := range warnings {
		logger.Warn().Str("key", w.Key).Str("module", w.Namespace).Msg(w.String())
	}

	configured = true

	logger.Debug().
		Str("module", modulePath).
		Int("settings", settings.Len()).
		Int("warnings", len(warnings)).
		Msg("settings module configured")

	return &Result{
		ModulePath: modulePath,
		Namespace:  ns,
		Settings:   settings,
		Warnings:   warnings,
	}, nil
}
