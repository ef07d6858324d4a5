// FILE: lixenwraith/settings/loader.go
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// GlobalSection holds the deployment-wide values
	GlobalSection = "DEFAULT"
	// AppSectionPrefix starts the name of every application section
	AppSectionPrefix = "app:"
	// HereKey is injected into global with the deployment file's directory
	HereKey = "here"

	// setPrefix marks an application key that overrides a global value
	setPrefix = "set "
)

// Deployment is a parsed deployment file: one global section and any number
// of application sections
type Deployment struct {
	Path   string
	Global map[string]any
	apps   map[string]map[string]any
}

// LoadDeployment reads a deployment file, detecting its format from the
// extension first and from the content second
func LoadDeployment(path string) (*Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDeploymentNotFound, path)
		}
		return nil, fmt.Errorf("failed to read deployment file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}
	if format == "" {
		return nil, fmt.Errorf("unable to determine format of deployment file '%s'", path)
	}

	return ParseDeployment(data, format, path)
}

// ParseDeployment parses data in the given format. When path is not empty
// FileKey and HereKey are injected into the global section.
func ParseDeployment(data []byte, format, path string) (*Deployment, error) {
	var (
		d   *Deployment
		err error
	)
	if format == FormatINI {
		d, err = parseINIDeployment(data)
	} else {
		d, err = parseTableDeployment(data, format)
	}
	if err != nil {
		if path != "" {
			return nil, fmt.Errorf("deployment file '%s': %w", path, err)
		}
		return nil, err
	}

	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve deployment path '%s': %w", path, err)
		}
		d.Path = abs
		if _, ok := d.Global[FileKey]; !ok {
			d.Global[FileKey] = abs
		}
		if _, ok := d.Global[HereKey]; !ok {
			d.Global[HereKey] = filepath.Dir(abs)
		}
	}
	return d, nil
}

func parseINIDeployment(data []byte) (*Deployment, error) {
	f, err := loadINI(data)
	if err != nil {
		return nil, err
	}

	d := &Deployment{
		Global: make(map[string]any),
		apps:   make(map[string]map[string]any),
	}
	for k, v := range f.Section(GlobalSection).KeysHash() {
		d.Global[k] = v
	}

	for _, section := range f.Sections() {
		name, ok := strings.CutPrefix(section.Name(), AppSectionPrefix)
		if !ok {
			continue
		}
		local := make(map[string]any)
		for _, key := range section.Keys() {
			local[key.Name()] = key.Value()
		}
		d.apps[strings.TrimSpace(name)] = local
	}
	return d, nil
}

func parseTableDeployment(data []byte, format string) (*Deployment, error) {
	tables, err := decodeTables(data, format)
	if err != nil {
		return nil, err
	}

	d := &Deployment{
		Global: make(map[string]any),
		apps:   make(map[string]map[string]any),
	}
	for name, raw := range tables {
		table, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("top-level key %q is not a section", name)
		}
		if name == GlobalSection {
			d.Global = copyMap(table)
			continue
		}
		if app, ok := strings.CutPrefix(name, AppSectionPrefix); ok {
			d.apps[strings.TrimSpace(app)] = copyMap(table)
		}
	}
	return d, nil
}

// Apps returns the application names in lexicographic order
func (d *Deployment) Apps() []string {
	names := make([]string, 0, len(d.apps))
	for name := range d.apps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// App returns fresh global and local mappings for application name.
// Keys of the form "set <key>" move to global, overriding its value.
func (d *Deployment) App(name string) (global, local map[string]any, err error) {
	section, ok := d.apps[name]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrAppNotFound, name)
	}

	global = copyMap(d.Global)
	local = make(map[string]any, len(section))
	for key, value := range section {
		if target, ok := strings.CutPrefix(key, setPrefix); ok {
			global[strings.TrimSpace(target)] = value
			continue
		}
		local[key] = value
	}
	return global, local, nil
}
