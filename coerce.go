// FILE: lixenwraith/settings/coerce.go
package settings

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	trueTokens  = map[string]bool{"true": true, "yes": true, "on": true, "y": true, "t": true, "1": true}
	falseTokens = map[string]bool{"false": true, "no": true, "off": true, "n": true, "f": true, "0": true}
)

// Coerce converts value according to category c.
// Already-typed values of the category are returned unchanged.
func Coerce(c Category, value any) (any, error) {
	switch c {
	case CategoryDefault:
		return value, nil
	case CategoryBoolean:
		return AsBool(value)
	case CategoryInteger:
		return AsInt(value)
	case CategoryTuple:
		return AsTuple(value)
	case CategoryNestedTuple:
		return AsNestedTuple(value)
	case CategoryDictionary:
		return AsDict(value)
	case CategoryTreeTuple:
		return AsTree(value)
	case CategoryNoneIfEmpty:
		return AsNoneIfEmpty(value), nil
	case CategoryUnsupported:
		return nil, configErrorf("", "setting is not supported in deployment configuration")
	}
	return nil, fmt.Errorf("unknown setting category %d", int(c))
}

// AsBool parses the boolean tokens true/yes/on/y/t/1 and false/no/off/n/f/0,
// ignoring case and surrounding space
func AsBool(value any) (bool, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		token := strings.ToLower(strings.TrimSpace(v.String()))
		if trueTokens[token] {
			return true, nil
		}
		if falseTokens[token] {
			return false, nil
		}
		return false, configErrorf("", "%q is not a boolean", v.String())
	// Numeric interpretation: 0 is false, non-zero is true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	}
	return false, configErrorf("", "cannot convert type %T to boolean", value)
}

// AsInt parses a base-10 integer
func AsInt(value any) (int, error) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		if i < math.MinInt || i > math.MaxInt {
			return 0, configErrorf("", "integer %d overflows int", i)
		}
		return int(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, configErrorf("", "integer %d overflows int", u)
		}
		return int(u), nil
	case reflect.String:
		s := strings.TrimSpace(v.String())
		i, err := strconv.ParseInt(s, 10, strconv.IntSize)
		if err != nil {
			return 0, &ConfigurationError{Reason: fmt.Sprintf("%q is not an integer", v.String()), Err: err}
		}
		return int(i), nil
	}
	return 0, configErrorf("", "cannot convert type %T to integer", value)
}

// AsTuple splits text into its trimmed non-blank lines
func AsTuple(value any) (Tuple, error) {
	switch v := value.(type) {
	case Tuple:
		return v, nil
	case []string:
		return Tuple(v), nil
	case []any:
		return stringsOf(v)
	case string:
		return splitLines(v), nil
	}
	return nil, configErrorf("", "cannot convert type %T to tuple", value)
}

// AsNestedTuple splits text into lines and every line on ';'
func AsNestedTuple(value any) (NestedTuple, error) {
	switch v := value.(type) {
	case NestedTuple:
		return v, nil
	case [][]string:
		return NestedTuple(v), nil
	case string:
		lines := splitLines(v)
		nested := make(NestedTuple, 0, len(lines))
		for _, line := range lines {
			segments := strings.Split(line, ";")
			for i := range segments {
				segments[i] = strings.TrimSpace(segments[i])
			}
			nested = append(nested, segments)
		}
		return nested, nil
	}
	return nil, configErrorf("", "cannot convert type %T to nested tuple", value)
}

// AsDict splits text into lines of "key = value", splitting on the first '='
func AsDict(value any) (Dict, error) {
	switch v := value.(type) {
	case Dict:
		return v, nil
	case map[string]string:
		d := Dict{}
		for _, k := range sortedKeys(v) {
			d.Set(k, v[k])
		}
		return d, nil
	case string:
		d := Dict{}
		for _, line := range splitLines(v) {
			key, val, ok := strings.Cut(line, "=")
			if !ok {
				return Dict{}, configErrorf("", "dictionary line %q has no '='", line)
			}
			d.Set(strings.TrimSpace(key), strings.TrimSpace(val))
		}
		return d, nil
	}
	return Dict{}, configErrorf("", "cannot convert type %T to dictionary", value)
}

// AsTree parses text with ParseTree
func AsTree(value any) (Tree, error) {
	switch v := value.(type) {
	case Tree:
		return v, nil
	case string:
		return ParseTree(v)
	}
	return nil, configErrorf("", "cannot convert type %T to tree tuple", value)
}

// AsNoneIfEmpty returns nil for blank text and the trimmed text otherwise.
// Non-string values are returned unchanged.
func AsNoneIfEmpty(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

// splitLines returns the trimmed non-blank lines of s in order
func splitLines(s string) Tuple {
	lines := Tuple{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func stringsOf(items []any) (Tuple, error) {
	out := make(Tuple, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, configErrorf("", "tuple element %v is %T, not string", item, item)
		}
		out = append(out, s)
	}
	return out, nil
}
