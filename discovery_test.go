// FILE: lixenwraith/settings/discovery_test.go
package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDiscoverFile tests deployment file discovery
func TestDiscoverFile(t *testing.T) {
	dir := t.TempDir()
	iniPath := filepath.Join(dir, "mysite.ini")
	require.NoError(t, os.WriteFile(iniPath, []byte("[app:main]\n"), 0644))

	opts := FileDiscoveryOptions{
		App:     "mysite",
		Paths:   []string{dir},
		EnvVar:  "MYSITE_CONFIG",
		CLIFlag: "--config",
	}

	t.Run("CLIFlag", func(t *testing.T) {
		assert.Equal(t, "/a/deploy.ini", DiscoverFile(opts, []string{"serve", "--config", "/a/deploy.ini"}))
		assert.Equal(t, "/b/deploy.ini", DiscoverFile(opts, []string{"--config=/b/deploy.ini"}))
		assert.Equal(t, "/c/deploy.ini", DiscoverFile(opts, []string{"--config", "config:/c/deploy.ini"}))
	})

	t.Run("PositionalConfigURI", func(t *testing.T) {
		assert.Equal(t, "production.ini", DiscoverFile(opts, []string{"serve", "--reload", "production.ini"}))
		assert.Equal(t, "site.toml", DiscoverFile(opts, []string{"config:site.toml"}))
	})

	t.Run("EnvVar", func(t *testing.T) {
		t.Setenv("MYSITE_CONFIG", "config:/env/deploy.ini")
		assert.Equal(t, "/env/deploy.ini", DiscoverFile(opts, []string{"serve"}))
	})

	t.Run("SearchPaths", func(t *testing.T) {
		t.Setenv("MYSITE_CONFIG", "")
		assert.Equal(t, iniPath, DiscoverFile(opts, nil))
	})

	t.Run("ConventionalNames", func(t *testing.T) {
		t.Setenv("MYSITE_CONFIG", "")
		conventional := t.TempDir()
		dev := filepath.Join(conventional, "development.ini")
		require.NoError(t, os.WriteFile(dev, []byte("[app:main]\n"), 0644))

		o := opts
		o.Paths = []string{conventional}
		assert.Equal(t, dev, DiscoverFile(o, nil))

		prod := filepath.Join(conventional, "production.ini")
		require.NoError(t, os.WriteFile(prod, []byte("[app:main]\n"), 0644))
		assert.Equal(t, prod, DiscoverFile(o, nil))
	})

	t.Run("ExplicitNamesAndExtensions", func(t *testing.T) {
		t.Setenv("MYSITE_CONFIG", "")
		custom := t.TempDir()
		path := filepath.Join(custom, "staging.yaml")
		require.NoError(t, os.WriteFile(path, []byte("DEFAULT: {}\n"), 0644))

		o := opts
		o.Paths = []string{custom}
		o.Names = []string{"staging"}
		o.Extensions = []string{".yaml"}
		assert.Equal(t, path, DiscoverFile(o, nil))

		// Explicit names replace the conventional ones
		require.NoError(t, os.WriteFile(filepath.Join(custom, "production.yaml"), []byte("DEFAULT: {}\n"), 0644))
		assert.Equal(t, path, DiscoverFile(o, nil))
	})

	t.Run("NotFound", func(t *testing.T) {
		t.Setenv("OTHER_CONFIG", "")
		missing := FileDiscoveryOptions{App: "other", Paths: []string{t.TempDir()}}
		assert.Empty(t, DiscoverFile(missing, nil))
	})

	t.Run("XDG", func(t *testing.T) {
		xdg := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(xdg, "xdgsite"), 0755))
		path := filepath.Join(xdg, "xdgsite", "xdgsite.ini")
		require.NoError(t, os.WriteFile(path, []byte("[app:main]\n"), 0644))
		t.Setenv("XDG_CONFIG_HOME", xdg)
		t.Setenv("XDGSITE_CONFIG", "")

		xdgOpts := DefaultDiscoveryOptions("xdgsite")
		xdgOpts.UseCurrentDir = false
		assert.Equal(t, path, DiscoverFile(xdgOpts, nil))
	})

	t.Run("Builder", func(t *testing.T) {
		b := NewBuilder().WithArgs([]string{"-c", "ignored", "--config", iniPath}).WithFileDiscovery(opts)
		assert.Equal(t, iniPath, b.file)
	})
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	opts := DefaultDiscoveryOptions("my-site")
	assert.Equal(t, "my-site", opts.App)
	assert.Equal(t, "MY_SITE_CONFIG", opts.EnvVar)
	assert.Equal(t, "--config", opts.CLIFlag)
	assert.True(t, opts.UseXDG)
	assert.True(t, opts.UseCurrentDir)

	defaults := discoveryDefaults(opts.App)
	assert.Equal(t, []string{"my-site", "production", "development"}, defaults.Names)
	assert.Equal(t, ".ini", defaults.Extensions[0])
}

func TestXDGConfigDirs(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.config")
	t.Setenv("XDG_CONFIG_DIRS", "/opt/xdg")
	assert.Equal(t, []string{"/home/u/.config/mysite", "/opt/xdg/mysite"}, xdgConfigDirs("mysite"))

	t.Setenv("XDG_CONFIG_DIRS", "")
	dirs := xdgConfigDirs("mysite")
	assert.Equal(t, []string{"/home/u/.config/mysite", "/etc/xdg/mysite", "/etc/mysite"}, dirs)
}
