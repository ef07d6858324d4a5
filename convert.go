// FILE: lixenwraith/settings/convert.go
package settings

import (
	"strings"
)

const (
	// DebugFlag is the global key holding the authoritative debug flag
	DebugFlag = "debug"
	// DebugSetting is the framework setting the debug flag is exposed as
	DebugSetting = "DEBUG"
	// FileKey is the global key carrying the deployment file path
	FileKey = "__file__"
	// FileSetting replaces FileKey in the output
	FileSetting = "paste_configuration_file"
)

// Converter coerces raw deployment values into typed settings
type Converter struct {
	catalog *Catalog
}

// NewConverter returns a converter over catalog, or DefaultCatalog when nil.
// The catalog is copied; later changes to it are not seen.
func NewConverter(catalog *Catalog) *Converter {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Converter{catalog: catalog.Clone()}
}

// Convert coerces global and local with the default catalog
func Convert(global, local map[string]any) (*Settings, error) {
	return NewConverter(nil).Convert(global, local)
}

// Convert validates the debug flag, applies custom category declarations
// found in global, merges local over global and coerces every value by
// category. Declaration keys never reach the output, and only those in global
// take effect. Neither input is modified.
func (cv *Converter) Convert(global, local map[string]any) (*Settings, error) {
	if _, ok := global[DebugSetting]; ok {
		return nil, configErrorf(DebugSetting, "must not be set directly, use %q in the global configuration", DebugFlag)
	}
	if _, ok := local[DebugSetting]; ok {
		return nil, configErrorf(DebugSetting, "must not be set directly, use %q in the global configuration", DebugFlag)
	}

	rawDebug, ok := global[DebugFlag]
	if !ok {
		return nil, configErrorf(DebugFlag, "is required in the global configuration")
	}
	debug, err := AsBool(rawDebug)
	if err != nil {
		return nil, wrapConfigError(DebugFlag, err)
	}

	catalog, err := cv.declare(global)
	if err != nil {
		return nil, err
	}

	// Local values replace global ones whole, nested maps included
	working := make(map[string]any, len(global)+len(local))
	for _, source := range []map[string]any{global, local} {
		for k, v := range source {
			if !strings.HasPrefix(k, CustomPrefix) {
				working[k] = v
			}
		}
	}
	if _, ok := working[FileKey]; ok {
		if _, clash := working[FileSetting]; clash {
			return nil, configErrorf(FileSetting, "clashes with the renamed %q key", FileKey)
		}
	}

	out := make(map[string]any, len(working)+1)
	for key, raw := range working {
		value, err := Coerce(catalog.Resolve(key), raw)
		if err != nil {
			return nil, wrapConfigError(key, err)
		}
		if key == FileKey {
			key = FileSetting
		}
		out[key] = value
	}
	out[DebugSetting] = debug

	return newSettings(out), nil
}

// declare returns a per-call catalog extended by custom_settings.* keys
func (cv *Converter) declare(global map[string]any) (*Catalog, error) {
	catalog := cv.catalog
	cloned := false

	for _, key := range sortedKeys(global) {
		if !strings.HasPrefix(key, CustomPrefix) {
			continue
		}
		c, err := ParseCategory(strings.TrimPrefix(key, CustomPrefix))
		if err != nil {
			return nil, wrapConfigError(key, err)
		}
		names, err := declaredNames(global[key])
		if err != nil {
			return nil, wrapConfigError(key, err)
		}
		if !cloned {
			catalog = catalog.Clone()
			cloned = true
		}
		if err := catalog.Register(c, names...); err != nil {
			return nil, wrapConfigError(key, err)
		}
	}
	return catalog, nil
}

// declaredNames accepts whitespace separated text or a sequence of names
func declaredNames(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return strings.Fields(v), nil
	case Tuple:
		return v, nil
	case []string:
		return v, nil
	case []any:
		return stringsOf(v)
	}
	return nil, configErrorf("", "cannot read setting names from type %T", value)
}
