// File: lixenwraith/settings/builder.go
package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// DefaultApp is the application section used when none is named
const DefaultApp = "main"

// ValidatorFunc checks the configured namespace after merging.
// It receives the SetUp result and should return an error if validation fails.
type ValidatorFunc func(r *Result) error

// Builder provides a fluent interface for configuring a settings module from
// a deployment file
type Builder struct {
	file       string
	app        string
	args       []string
	overrides  map[string]any
	opts       SetupOptions
	catalog    *Catalog
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new builder for the DefaultApp section
func NewBuilder() *Builder {
	return &Builder{
		app:        DefaultApp,
		args:       os.Args[1:],
		overrides:  make(map[string]any),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the deployment file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithApp selects the application section
func (b *Builder) WithApp(name string) *Builder {
	b.app = name
	return b
}

// WithArgs sets the command-line arguments used by WithFileDiscovery
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithResolver sets how the settings module is found
func (b *Builder) WithResolver(r Resolver) *Builder {
	b.opts.Resolver = r
	return b
}

// WithSettingsRoot resolves settings modules from files below root
func (b *Builder) WithSettingsRoot(root string) *Builder {
	b.opts.Resolver = NewFileResolver(root)
	return b
}

// WithCatalog replaces the default catalog of well-known settings
func (b *Builder) WithCatalog(c *Catalog) *Builder {
	b.catalog = c
	return b
}

// WithEnvironment sets the environment receiving the module path
func (b *Builder) WithEnvironment(env Environment, envVar string) *Builder {
	b.opts.Environment = env
	b.opts.EnvVar = envVar
	return b
}

// WithRestoreEnv restores the environment variable once setup is done
func (b *Builder) WithRestoreEnv(restore bool) *Builder {
	b.opts.RestoreEnv = restore
	return b
}

// WithReserved marks attribute names the merge may overwrite
func (b *Builder) WithReserved(names ...string) *Builder {
	if b.opts.Merge.Reserved == nil {
		b.opts.Merge.Reserved = make(map[string]bool)
	}
	for _, name := range names {
		b.opts.Merge.Reserved[name] = true
	}
	return b
}

// WithLogger sets the logger receiving merge warnings
func (b *Builder) WithLogger(l zerolog.Logger) *Builder {
	b.opts.Logger = &l
	return b
}

// WithLocal adds application values on top of the deployment file's section
func (b *Builder) WithLocal(key string, value any) *Builder {
	if key == "" {
		b.err = errors.Join(b.err, fmt.Errorf("local override key cannot be empty"))
		return b
	}
	b.overrides[key] = value
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build loads the deployment file and sets up the settings module
func (b *Builder) Build() (*Result, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.file == "" {
		return nil, fmt.Errorf("%w: no deployment file configured", ErrDeploymentNotFound)
	}

	d, err := LoadDeployment(b.file)
	if err != nil {
		return nil, err
	}
	global, local, err := d.App(b.app)
	if err != nil {
		return nil, err
	}
	for k, v := range b.overrides {
		local[k] = v
	}

	opts := b.opts
	if b.catalog != nil {
		opts.Converter = NewConverter(b.catalog)
	}

	result, err := SetUp(global, local, opts)
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(result); err != nil {
			return nil, fmt.Errorf("settings validation failed: %w", err)
		}
	}
	return result, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Result {
	result, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("settings build failed: %v", err))
	}
	return result
}

// BuildAndScan builds and decodes the configured module into target.
// The resolved namespace must be a *Module.
func (b *Builder) BuildAndScan(target any) error {
	result, err := b.Build()
	if err != nil {
		return err
	}

	m, ok := result.Namespace.(*Module)
	if !ok {
		return fmt.Errorf("cannot scan namespace of type %T", result.Namespace)
	}
	if err := m.Scan(target); err != nil {
		return fmt.Errorf("failed to scan settings into target: %w", err)
	}
	return nil
}
