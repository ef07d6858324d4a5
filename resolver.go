// FILE: lixenwraith/settings/resolver.go
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Resolver finds the settings namespace named by a dotted path
type Resolver interface {
	Resolve(path string) (Namespace, error)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(path string) (Namespace, error)

func (f ResolverFunc) Resolve(path string) (Namespace, error) {
	return f(path)
}

// Registry resolves dotted paths to registered namespaces.
// Resolving the same path twice returns the same namespace.
type Registry struct {
	modules map[string]Namespace
	mutex   sync.RWMutex
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]Namespace)}
}

// Register makes ns resolvable under path
func (r *Registry) Register(path string, ns Namespace) error {
	if !isValidModulePath(path) {
		return fmt.Errorf("invalid settings module path %q", path)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.modules[path] = ns
	return nil
}

// RegisterValues registers a new Module named path holding values
func (r *Registry) RegisterValues(path string, values map[string]any) (*Module, error) {
	m := NewModule(path, values)
	if err := r.Register(path, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Registry) Resolve(path string) (Namespace, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ns, ok := r.modules[path]
	if !ok {
		return nil, &LookupError{Path: path}
	}
	return ns, nil
}

// FileResolver loads settings modules from files below Root.
// The path "mysite.settings" maps to Root/mysite/settings with the first
// existing extension among .toml, .yaml, .yml and .json.
// Loaded modules are cached, so repeated resolves share one namespace.
type FileResolver struct {
	Root string

	cache map[string]*Module
	mutex sync.Mutex
}

// NewFileResolver returns a resolver rooted at root
func NewFileResolver(root string) *FileResolver {
	return &FileResolver{Root: root}
}

func (r *FileResolver) Resolve(path string) (Namespace, error) {
	if !isValidModulePath(path) {
		return nil, &LookupError{Path: path, Err: errors.New("invalid dotted path")}
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if m, ok := r.cache[path]; ok {
		return m, nil
	}

	base := filepath.Join(r.Root, filepath.Join(strings.Split(path, ".")...))
	for _, ext := range moduleExtensions {
		file := base + ext
		data, err := os.ReadFile(file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read settings module '%s': %w", file, err)
		}

		values, err := decodeTables(data, detectFileFormat(file))
		if err != nil {
			return nil, fmt.Errorf("settings module '%s': %w", file, err)
		}

		m := NewModule(path, values)
		if r.cache == nil {
			r.cache = make(map[string]*Module)
		}
		r.cache[path] = m
		return m, nil
	}

	return nil, &LookupError{Path: path, Err: os.ErrNotExist}
}
