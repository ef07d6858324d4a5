// File: lixenwraith/settings/convenience.go
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Quick configures the settings module of the DefaultApp section of the
// deployment file at path, resolving modules from files below root
func Quick(path, root string) (*Result, error) {
	return NewBuilder().
		WithFile(path).
		WithSettingsRoot(root).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(path, root string) *Result {
	result, err := Quick(path, root)
	if err != nil {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return result
}

// Plain converts typed setting values into types every encoder understands:
// Dict becomes a map, Tuple and Tree become slices. Nil values are dropped
// from maps since TOML has no null.
func Plain(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if v == nil {
			continue
		}
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case Dict:
		return t.Map()
	case Tuple:
		return []string(t)
	case NestedTuple:
		return [][]string(t)
	case Tree:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plainValue(item)
		}
		return out
	case map[string]any:
		return Plain(t)
	}
	return v
}

// Dump writes values to w in the given format (toml, json or yaml)
func Dump(w io.Writer, values map[string]any, format string) error {
	plain := Plain(values)
	switch strings.ToLower(format) {
	case FormatTOML, "":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(plain); err != nil {
			return fmt.Errorf("failed to marshal settings to TOML: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(plain)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(plain)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

// Debug returns a formatted string showing every setting and its category in
// the converter's catalog. Names declared through custom_settings.* keys are
// listed as default.
func (cv *Converter) Debug(s *Settings) string {
	var b strings.Builder
	b.WriteString("Coerced settings:\n")
	for _, key := range s.Keys() {
		v, _ := s.Get(key)
		b.WriteString(fmt.Sprintf("  %s (%s): %#v\n", key, cv.catalog.Resolve(key), v))
	}
	return b.String()
}
