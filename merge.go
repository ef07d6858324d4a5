// FILE: lixenwraith/settings/merge.go
package settings

import (
	"fmt"
	"reflect"
)

// Warning records a setting that was dropped because the namespace already
// declares it
type Warning struct {
	Key       string
	Namespace string
}

func (w Warning) String() string {
	return fmt.Sprintf("%q will not be overridden in %s", w.Key, w.Namespace)
}

// MergeOptions configures Merge
type MergeOptions struct {
	// Reserved names are host or framework attributes. An existing reserved
	// attribute counts as absent and is overwritten.
	Reserved map[string]bool

	// Authoritative names must not already exist on the namespace
	Authoritative map[string]bool
}

// NameSet builds a set for MergeOptions
func NameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

type mergeAction int

const (
	actionSet mergeAction = iota
	actionExtend
	actionKeep
)

type mergeStep struct {
	key    string
	action mergeAction
	value  any
}

// Merge applies settings to ns in key order.
//
// Absent attributes are set. Existing slice attributes are extended with the
// new elements. Existing scalar attributes are kept and reported as warnings.
// Every decision is made before ns is modified, so on error ns is unchanged.
//
// The check and the write are not atomic: callers must serialize merges that
// target the same namespace.
func Merge(ns Namespace, settings *Settings, opts MergeOptions) ([]Warning, error) {
	steps := make([]mergeStep, 0, settings.Len())

	for _, key := range settings.Keys() {
		value, _ := settings.Get(key)

		existing, exists := ns.Lookup(key)
		if exists && opts.Reserved[key] {
			exists = false
		}
		if !exists {
			steps = append(steps, mergeStep{key: key, action: actionSet, value: value})
			continue
		}
		if opts.Authoritative[key] {
			return nil, configErrorf(key, "must not be declared in %s", ns.Name())
		}

		if isSequence(existing) {
			extended, err := extend(existing, value)
			if err != nil {
				return nil, wrapConfigError(key, err)
			}
			steps = append(steps, mergeStep{key: key, action: actionExtend, value: extended})
			continue
		}
		steps = append(steps, mergeStep{key: key, action: actionKeep})
	}

	var warnings []Warning
	for _, step := range steps {
		switch step.action {
		case actionSet, actionExtend:
			ns.Set(step.key, step.value)
		case actionKeep:
			warnings = append(warnings, Warning{Key: step.key, Namespace: ns.Name()})
		}
	}
	return warnings, nil
}

// isSequence reports whether v is a slice that Merge extends
func isSequence(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Slice
}

// extend returns a new slice of existing's type holding existing's elements
// followed by addition's
func extend(existing, addition any) (any, error) {
	if !isSequence(addition) {
		return nil, configErrorf("", "cannot extend %T with non-sequence %T", existing, addition)
	}

	ev := reflect.ValueOf(existing)
	av := reflect.ValueOf(addition)
	elemType := ev.Type().Elem()

	out := reflect.MakeSlice(ev.Type(), 0, ev.Len()+av.Len())
	out = reflect.AppendSlice(out, ev)
	for i := 0; i < av.Len(); i++ {
		elem := av.Index(i)
		// Unwrap []any elements so their dynamic type is checked
		if elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}
		if !elem.IsValid() || !elem.Type().AssignableTo(elemType) {
			return nil, configErrorf("", "cannot extend %T with element %v of %T", existing, av.Index(i).Interface(), addition)
		}
		out = reflect.Append(out, elem)
	}
	return out.Interface(), nil
}
