// FILE: lixenwraith/settings/format.go
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// Supported file formats
const (
	FormatINI  = "ini"
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// moduleExtensions are tried in order when resolving a settings module file
var moduleExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ini", ".cfg":
		return FormatINI
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".conf", ".config":
		// Try to detect from content
		return ""
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before INI: a TOML document with only bare sections parses as INI too
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	// Paste deployment files start with a bracketed section
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return FormatINI
	}

	// YAML accepts nearly anything, so it is the last resort
	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}

// decodeTables parses a TOML, YAML or JSON document into its top-level map
func decodeTables(data []byte, format string) (map[string]any, error) {
	out := make(map[string]any)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&out); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		normalizeJSONNumbers(out)
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return out, nil
}

// loadINI parses a Paste style INI document.
// Indented continuation lines are folded into multi-line values.
func loadINI(data []byte) (*ini.File, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI: %w", err)
	}
	return f, nil
}

// normalizeJSONNumbers turns integral json.Number values into int64 and the
// rest into float64, recursing into maps and slices
func normalizeJSONNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, item := range t {
			t[k] = normalizeJSONNumbers(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = normalizeJSONNumbers(item)
		}
		return t
	}
	return v
}
