// FILE: lixenwraith/settings/discovery.go
package settings

import (
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
)

// configURIPrefix is the scheme Paste accepts in front of a deployment path,
// as in "config:production.ini"
const configURIPrefix = "config:"

// DeploymentNames are the conventional deployment file names, tried after
// the application's own name
var DeploymentNames = []string{"production", "development"}

// deploymentExtensions are tried in order for every candidate name
var deploymentExtensions = []string{".ini", ".cfg", ".toml", ".yaml", ".json"}

// FileDiscoveryOptions configures automatic deployment file discovery.
// Empty Names and Extensions are filled from the application name and the
// supported deployment formats.
type FileDiscoveryOptions struct {
	// App selects the XDG subdirectory and the first candidate name
	App string

	// Names are candidate base names without extension
	Names []string

	Extensions []string

	// Paths are searched before the current and XDG directories
	Paths []string

	// EnvVar holds an explicit deployment path
	EnvVar string

	// CLIFlag names the flag carrying an explicit path, e.g. "--config"
	CLIFlag string

	UseXDG        bool
	UseCurrentDir bool
}

// DefaultDiscoveryOptions looks for <app>, production and development
// deployment files in the current and XDG directories
func DefaultDiscoveryOptions(app string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		App:           app,
		EnvVar:        strings.ToUpper(strings.ReplaceAll(app, "-", "_")) + "_CONFIG",
		CLIFlag:       "--config",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery sets the deployment file to the first one found
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if path := DiscoverFile(opts, b.args); path != "" {
		b.file = path
	}
	return b
}

// DiscoverFile returns the deployment file named by, in order: the CLI flag,
// the first positional argument with a deployment extension (Paste's
// config_uri), the environment variable, or the first candidate found in the
// search directories. A "config:" prefix is accepted on explicit paths.
// It returns "" when nothing is found.
func DiscoverFile(opts FileDiscoveryOptions, args []string) string {
	if err := mergo.Merge(&opts, discoveryDefaults(opts.App)); err != nil {
		return ""
	}

	if path := pathFromArgs(opts.CLIFlag, args); path != "" {
		return path
	}
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return strings.TrimPrefix(path, configURIPrefix)
		}
	}

	dirs := append([]string(nil), opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			dirs = append(dirs, cwd)
		}
	}
	if opts.UseXDG && opts.App != "" {
		dirs = append(dirs, xdgConfigDirs(opts.App)...)
	}

	for _, dir := range dirs {
		for _, name := range opts.Names {
			for _, ext := range opts.Extensions {
				path := filepath.Join(dir, name+ext)
				if info, err := os.Stat(path); err == nil && !info.IsDir() {
					return path
				}
			}
		}
	}
	return ""
}

// discoveryDefaults holds the values merged into unset discovery options
func discoveryDefaults(app string) FileDiscoveryOptions {
	var names []string
	if app != "" {
		names = append(names, app)
	}
	return FileDiscoveryOptions{
		Names:      append(names, DeploymentNames...),
		Extensions: deploymentExtensions,
	}
}

// pathFromArgs finds an explicit deployment path on the command line
func pathFromArgs(flag string, args []string) string {
	if flag != "" {
		for i, arg := range args {
			if arg == flag && i+1 < len(args) {
				return strings.TrimPrefix(args[i+1], configURIPrefix)
			}
			if value, ok := strings.CutPrefix(arg, flag+"="); ok {
				return strings.TrimPrefix(value, configURIPrefix)
			}
		}
	}

	for i, arg := range args {
		if strings.HasPrefix(arg, "-") || (i > 0 && args[i-1] == flag) {
			continue
		}
		path := strings.TrimPrefix(arg, configURIPrefix)
		if detectFileFormat(path) != "" {
			return path
		}
	}
	return ""
}

// xdgConfigDirs returns $XDG_CONFIG_HOME/<app> (or ~/.config/<app>) followed
// by every $XDG_CONFIG_DIRS entry, falling back to /etc/xdg and /etc
func xdgConfigDirs(app string) []string {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		if userHome, err := os.UserHomeDir(); err == nil {
			home = filepath.Join(userHome, ".config")
		}
	}

	system := filepath.SplitList(os.Getenv("XDG_CONFIG_DIRS"))
	if len(system) == 0 {
		system = []string{"/etc/xdg", "/etc"}
	}

	var dirs []string
	for _, base := range append([]string{home}, system...) {
		if base != "" {
			dirs = append(dirs, filepath.Join(base, app))
		}
	}
	return dirs
}
