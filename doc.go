// File: lixenwraith/settings/doc.go

// Package settings configures a web framework's settings module from a
// deployment file, so a deployment can change settings without editing the
// settings source.
//
// Features:
//   - Paste style INI deployment files, plus TOML, YAML and JSON
//   - Per-setting coercion: booleans, integers, tuples, nested tuples,
//     dictionaries, tree tuples and none-if-empty values
//   - Custom coercion rules declared in the deployment file itself
//   - Merging that never silently clobbers values the settings module declares
//   - Struct scanning of the configured module
//
// Quick Start:
//
//	; deploy.ini
//	[DEFAULT]
//	debug = false
//	django_settings_module = mysite.settings
//	custom_settings.booleans = FEATURE_X
//
//	[app:main]
//	SITE_ID = 2
//	FEATURE_X = yes
//	INSTALLED_APPS =
//	    blog
//	    shop
//	TEMPLATE_LOADERS =
//	    cached.Loader
//	     - filesystem.Loader,
//	     - app_directories.Loader,
//
//	result, err := settings.Quick("deploy.ini", "./settings")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range result.Warnings {
//	    log.Println(w)
//	}
//
// Merge Policy:
//
// A setting the module does not declare is added. A setting the module
// declares as a sequence is extended with the new elements. Any other
// declared setting keeps its value and the override is reported as a Warning.
// DEBUG comes only from the global "debug" flag: setting DEBUG directly in the
// deployment file, or declaring it in the module, is an error.
//
// Thread Safety:
// Module operations are individually safe for concurrent use, but a Merge
// checks and writes attributes in separate steps. Serialize configuration
// loads that target the same namespace.
package settings
