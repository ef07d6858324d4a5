// File: lixenwraith/settings/type.go
package settings

import (
	"fmt"
	"reflect"
	"strconv"
)

// String retrieves a string attribute.
// Attempts conversion from common types if the stored value isn't already a string.
func (m *Module) String(name string) (string, error) {
	val, found := m.Lookup(name)
	if !found {
		return "", fmt.Errorf("attribute not set: %s", name)
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for attribute %s", val, name)
	}
}

// Int retrieves an integer attribute, parsing strings with AsInt
func (m *Module) Int(name string) (int, error) {
	val, found := m.Lookup(name)
	if !found {
		return 0, fmt.Errorf("attribute not set: %s", name)
	}
	i, err := AsInt(val)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", name, err)
	}
	return i, nil
}

// Bool retrieves a boolean attribute, parsing strings with AsBool
func (m *Module) Bool(name string) (bool, error) {
	val, found := m.Lookup(name)
	if !found {
		return false, fmt.Errorf("attribute not set: %s", name)
	}
	b, err := AsBool(val)
	if err != nil {
		return false, fmt.Errorf("attribute %s: %w", name, err)
	}
	return b, nil
}

// Strings retrieves a sequence attribute as strings.
// Elements of []any values must themselves be strings.
func (m *Module) Strings(name string) ([]string, error) {
	val, found := m.Lookup(name)
	if !found {
		return nil, fmt.Errorf("attribute not set: %s", name)
	}
	t, err := AsTuple(val)
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", name, err)
	}
	return []string(t), nil
}
