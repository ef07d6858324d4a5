// FILE: lixenwraith/settings/loader_test.go
package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testINIDeployment = `
[DEFAULT]
debug = false
django_settings_module = mysite.settings
custom_settings.booleans = FEATURE_X

[app:main]
SITE_ID = 2
FEATURE_X = yes
set debug = true
INSTALLED_APPS =
    blog
    shop
TEMPLATE_LOADERS =
    cached.Loader
     - filesystem.Loader,
     - app_directories.Loader,

[app:admin]
SITE_ID = 3

[server:main]
port = 8080
`

// TestLoadDeployment tests deployment file loading
func TestLoadDeployment(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("INI", func(t *testing.T) {
		path := filepath.Join(tmpDir, "deploy.ini")
		require.NoError(t, os.WriteFile(path, []byte(testINIDeployment), 0644))

		d, err := LoadDeployment(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"admin", "main"}, d.Apps())

		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, abs, d.Path)
		assert.Equal(t, abs, d.Global[FileKey])
		assert.Equal(t, filepath.Dir(abs), d.Global[HereKey])

		global, local, err := d.App("main")
		require.NoError(t, err)
		assert.Equal(t, "true", global[DebugFlag])
		assert.Equal(t, "mysite.settings", global[ModuleKey])
		assert.NotContains(t, local, "set debug")
		assert.Equal(t, "2", local["SITE_ID"])

		// The section itself is not modified by the set override
		assert.Equal(t, "false", d.Global[DebugFlag])

		s, err := Convert(global, local)
		require.NoError(t, err)

		v, _ := s.Get("INSTALLED_APPS")
		assert.Equal(t, Tuple{"blog", "shop"}, v)
		v, _ = s.Get("FEATURE_X")
		assert.Equal(t, true, v)
		v, _ = s.Get("SITE_ID")
		assert.Equal(t, 2, v)
		v, _ = s.Get(DebugSetting)
		assert.Equal(t, true, v)
		v, _ = s.Get("TEMPLATE_LOADERS")
		assert.Equal(t, Tree{Tree{"cached.Loader", Tree{"filesystem.Loader", "app_directories.Loader"}}}, v)
		v, _ = s.Get(FileSetting)
		assert.Equal(t, abs, v)
	})

	t.Run("TOML", func(t *testing.T) {
		path := filepath.Join(tmpDir, "deploy.toml")
		content := `
[DEFAULT]
debug = true
django_settings_module = "mysite.settings"

["app:main"]
SITE_ID = 4
ALLOWED_HOSTS = ["example.com", "www.example.com"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		d, err := LoadDeployment(path)
		require.NoError(t, err)

		global, local, err := d.App("main")
		require.NoError(t, err)

		s, err := Convert(global, local)
		require.NoError(t, err)

		v, _ := s.Get("SITE_ID")
		assert.Equal(t, 4, v)
		v, _ = s.Get("ALLOWED_HOSTS")
		assert.Equal(t, Tuple{"example.com", "www.example.com"}, v)
		v, _ = s.Get(DebugSetting)
		assert.Equal(t, true, v)
	})

	t.Run("YAML", func(t *testing.T) {
		path := filepath.Join(tmpDir, "deploy.yaml")
		content := `
DEFAULT:
  debug: "no"
  django_settings_module: mysite.settings
"app:main":
  INSTALLED_APPS: |
    blog
    shop
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		d, err := LoadDeployment(path)
		require.NoError(t, err)

		global, local, err := d.App("main")
		require.NoError(t, err)

		s, err := Convert(global, local)
		require.NoError(t, err)
		v, _ := s.Get("INSTALLED_APPS")
		assert.Equal(t, Tuple{"blog", "shop"}, v)
	})

	t.Run("JSON", func(t *testing.T) {
		path := filepath.Join(tmpDir, "deploy.json")
		content := `{
  "DEFAULT": {"debug": false, "django_settings_module": "mysite.settings"},
  "app:main": {"EMAIL_PORT": 25}
}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		d, err := LoadDeployment(path)
		require.NoError(t, err)

		global, local, err := d.App("main")
		require.NoError(t, err)
		assert.Equal(t, int64(25), local["EMAIL_PORT"])

		s, err := Convert(global, local)
		require.NoError(t, err)
		v, _ := s.Get("EMAIL_PORT")
		assert.Equal(t, 25, v)
	})

	t.Run("ContentDetection", func(t *testing.T) {
		path := filepath.Join(tmpDir, "deploy.conf")
		require.NoError(t, os.WriteFile(path, []byte(`{"DEFAULT": {"debug": "no"}, "app:main": {}}`), 0644))

		d, err := LoadDeployment(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"main"}, d.Apps())
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadDeployment(filepath.Join(tmpDir, "nope.ini"))
		assert.ErrorIs(t, err, ErrDeploymentNotFound)
	})

	t.Run("MissingApp", func(t *testing.T) {
		path := filepath.Join(tmpDir, "deploy.ini")
		d, err := LoadDeployment(path)
		require.NoError(t, err)

		_, _, err = d.App("missing")
		assert.ErrorIs(t, err, ErrAppNotFound)
	})

	t.Run("InvalidTableSection", func(t *testing.T) {
		_, err := ParseDeployment([]byte(`DEFAULT = 1`), FormatTOML, "")
		assert.Error(t, err)
	})

	t.Run("ExplicitFileKeyKept", func(t *testing.T) {
		data := []byte("[DEFAULT]\n__file__ = /custom/deploy.ini\n\n[app:main]\n")
		d, err := ParseDeployment(data, FormatINI, filepath.Join(tmpDir, "x.ini"))
		require.NoError(t, err)
		assert.Equal(t, "/custom/deploy.ini", d.Global[FileKey])
	})

	t.Run("NoPath", func(t *testing.T) {
		d, err := ParseDeployment([]byte("[app:main]\nA = 1\n"), FormatINI, "")
		require.NoError(t, err)
		assert.Empty(t, d.Path)
		assert.NotContains(t, d.Global, FileKey)
		assert.NotContains(t, d.Global, HereKey)
	})
}
