// FILE: lixenwraith/settings/value.go
package settings

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Tuple is an ordered tuple of strings
type Tuple []string

// NestedTuple is an ordered tuple of string tuples
type NestedTuple [][]string

// Tree is a nested tuple parsed from an indented block.
// Each element is either a string or a Tree.
type Tree []any

// Pair is one entry of a Dict
type Pair struct {
	Key   string
	Value string
}

// Dict is a string mapping that remembers insertion order.
// The zero value is ready to use.
type Dict struct {
	pairs []Pair
	index map[string]int
}

// NewDict builds a Dict from pairs, later duplicates replacing earlier values
// in place.
func NewDict(pairs ...Pair) Dict {
	var d Dict
	for _, p := range pairs {
		d.Set(p.Key, p.Value)
	}
	return d
}

// Set stores value under key, keeping the position of an existing key
func (d *Dict) Set(key, value string) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[key]; ok {
		d.pairs[i].Value = value
		return
	}
	d.index[key] = len(d.pairs)
	d.pairs = append(d.pairs, Pair{Key: key, Value: value})
}

// Get returns the value stored under key
func (d Dict) Get(key string) (string, bool) {
	i, ok := d.index[key]
	if !ok {
		return "", false
	}
	return d.pairs[i].Value, true
}

// Len returns the number of entries
func (d Dict) Len() int {
	return len(d.pairs)
}

// Keys returns the keys in insertion order
func (d Dict) Keys() []string {
	keys := make([]string, len(d.pairs))
	for i, p := range d.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the entries in insertion order
func (d Dict) Pairs() []Pair {
	return append([]Pair(nil), d.pairs...)
}

// Map returns the entries as a plain map
func (d Dict) Map() map[string]string {
	m := make(map[string]string, len(d.pairs))
	for _, p := range d.pairs {
		m[p.Key] = p.Value
	}
	return m
}

// MarshalJSON encodes the Dict as a JSON object in insertion order
func (d Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range d.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Settings is the coerced output of a conversion, ordered by key
type Settings struct {
	keys   []string
	values map[string]any
}

// newSettings snapshots values; keys are sorted since map order is undefined
func newSettings(values map[string]any) *Settings {
	s := &Settings{
		keys:   make([]string, 0, len(values)),
		values: make(map[string]any, len(values)),
	}
	for k, v := range values {
		s.keys = append(s.keys, k)
		s.values[k] = v
	}
	sort.Strings(s.keys)
	return s
}

// NewSettings wraps an already-coerced mapping so it can be merged directly
func NewSettings(values map[string]any) *Settings {
	return newSettings(values)
}

// Get returns the coerced value for key
func (s *Settings) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present
func (s *Settings) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the setting names in merge order
func (s *Settings) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of settings
func (s *Settings) Len() int {
	return len(s.keys)
}

// Map returns a copy of the settings as a plain map
func (s *Settings) Map() map[string]any {
	m := make(map[string]any, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}
