// FILE: lixenwraith/settings/namespace.go
package settings

import (
	"sort"
	"sync"
)

// Namespace is the settings target the merge policy writes to
type Namespace interface {
	// Name identifies the namespace in warnings, usually its dotted path
	Name() string
	// Lookup returns the attribute value and whether it exists
	Lookup(name string) (any, bool)
	// Set creates or replaces an attribute
	Set(name string, value any)
}

// Module is an in-memory Namespace.
// Individual operations are safe for concurrent use; a Merge is not atomic.
type Module struct {
	name   string
	values map[string]any
	mutex  sync.RWMutex
}

// NewModule creates a module named name holding a copy of values
func NewModule(name string, values map[string]any) *Module {
	m := &Module{
		name:   name,
		values: make(map[string]any, len(values)),
	}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Lookup(name string) (any, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	v, ok := m.values[name]
	return v, ok
}

func (m *Module) Set(name string, value any) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.values[name] = value
}

// Delete removes an attribute, reporting whether it existed
func (m *Module) Delete(name string) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	_, ok := m.values[name]
	delete(m.values, name)
	return ok
}

// Names returns the attribute names in lexicographic order
func (m *Module) Names() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of attributes
func (m *Module) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.values)
}

// Snapshot returns a copy of the attributes
func (m *Module) Snapshot() map[string]any {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return copyMap(m.values)
}
