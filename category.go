// FILE: lixenwraith/settings/category.go
package settings

import (
	"fmt"
	"sort"
	"strings"
)

// Category selects the coercion rule applied to a setting
type Category int

const (
	// CategoryDefault leaves the value untouched
	CategoryDefault Category = iota
	CategoryBoolean
	CategoryInteger
	CategoryTuple
	CategoryNestedTuple
	CategoryDictionary
	CategoryTreeTuple
	CategoryNoneIfEmpty
	// CategoryUnsupported rejects the setting whatever its value
	CategoryUnsupported
)

// CustomPrefix starts the global keys that declare extra names for a category
const CustomPrefix = "custom_settings."

// categoryPrecedence is the lookup order used when a name is declared in more
// than one category.
var categoryPrecedence = []Category{
	CategoryUnsupported,
	CategoryBoolean,
	CategoryInteger,
	CategoryTuple,
	CategoryNestedTuple,
	CategoryDictionary,
	CategoryTreeTuple,
	CategoryNoneIfEmpty,
}

var categoryNames = map[Category]string{
	CategoryDefault:     "default",
	CategoryBoolean:     "booleans",
	CategoryInteger:     "integers",
	CategoryTuple:       "tuples",
	CategoryNestedTuple: "nested_tuples",
	CategoryDictionary:  "dictionaries",
	CategoryTreeTuple:   "tree_tuples",
	CategoryNoneIfEmpty: "none_if_empty_settings",
	CategoryUnsupported: "unsupported_settings",
}

// String returns the declaration name used after CustomPrefix
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory maps a declaration name such as "booleans" to its Category
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if c != CategoryDefault && n == name {
			return c, nil
		}
	}
	return CategoryDefault, fmt.Errorf("unknown setting category %q", name)
}

// DeclarationKey returns the global key that declares custom names for c
func (c Category) DeclarationKey() string {
	return CustomPrefix + c.String()
}

// Catalog holds the well-known setting names of every category
type Catalog struct {
	names map[Category]map[string]struct{}
}

// NewCatalog returns an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{names: make(map[Category]map[string]struct{})}
}

// Register adds names to category c
func (cat *Catalog) Register(c Category, names ...string) error {
	if c == CategoryDefault {
		return fmt.Errorf("cannot register names in the default category")
	}
	if _, ok := categoryNames[c]; !ok {
		return fmt.Errorf("unknown setting category %d", int(c))
	}

	set, ok := cat.names[c]
	if !ok {
		set = make(map[string]struct{})
		cat.names[c] = set
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("empty setting name in category %s", c)
		}
		set[name] = struct{}{}
	}
	return nil
}

// Names returns the sorted names registered in category c
func (cat *Catalog) Names(c Category) []string {
	names := make([]string, 0, len(cat.names[c]))
	for name := range cat.names[c] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains reports whether name is registered in category c
func (cat *Catalog) Contains(c Category, name string) bool {
	_, ok := cat.names[c][name]
	return ok
}

// Resolve returns the category of name, following categoryPrecedence
func (cat *Catalog) Resolve(name string) Category {
	for _, c := range categoryPrecedence {
		if cat.Contains(c, name) {
			return c
		}
	}
	return CategoryDefault
}

// Clone returns a deep copy so per-call declarations never leak
func (cat *Catalog) Clone() *Catalog {
	clone := NewCatalog()
	for c, set := range cat.names {
		copied := make(map[string]struct{}, len(set))
		for name := range set {
			copied[name] = struct{}{}
		}
		clone.names[c] = copied
	}
	return clone
}

// DefaultCatalog returns the catalog of the web framework's own settings
func DefaultCatalog() *Catalog {
	cat := NewCatalog()
	for c, names := range frameworkSettings {
		// Names are static and non-empty
		_ = cat.Register(c, names...)
	}
	return cat
}

var frameworkSettings = map[Category][]string{
	CategoryBoolean: {
		DebugSetting,
		"APPEND_SLASH",
		"CSRF_COOKIE_HTTPONLY",
		"CSRF_COOKIE_SECURE",
		"CSRF_USE_SESSIONS",
		"DEBUG_PROPAGATE_EXCEPTIONS",
		"EMAIL_USE_LOCALTIME",
		"EMAIL_USE_SSL",
		"EMAIL_USE_TLS",
		"PREPEND_WWW",
		"SECURE_BROWSER_XSS_FILTER",
		"SECURE_CONTENT_TYPE_NOSNIFF",
		"SECURE_HSTS_INCLUDE_SUBDOMAINS",
		"SECURE_HSTS_PRELOAD",
		"SECURE_SSL_REDIRECT",
		"SEND_BROKEN_LINK_EMAILS",
		"SESSION_COOKIE_HTTPONLY",
		"SESSION_COOKIE_SECURE",
		"SESSION_EXPIRE_AT_BROWSER_CLOSE",
		"SESSION_SAVE_EVERY_REQUEST",
		"TEMPLATE_DEBUG",
		"USE_ETAGS",
		"USE_I18N",
		"USE_L10N",
		"USE_THOUSAND_SEPARATOR",
		"USE_TZ",
		"USE_X_FORWARDED_HOST",
		"USE_X_FORWARDED_PORT",
	},
	CategoryInteger: {
		"CACHE_MIDDLEWARE_SECONDS",
		"CSRF_COOKIE_AGE",
		"DATA_UPLOAD_MAX_MEMORY_SIZE",
		"DATA_UPLOAD_MAX_NUMBER_FIELDS",
		"EMAIL_PORT",
		"EMAIL_TIMEOUT",
		"FILE_UPLOAD_MAX_MEMORY_SIZE",
		"FIRST_DAY_OF_WEEK",
		"NUMBER_GROUPING",
		"PASSWORD_RESET_TIMEOUT_DAYS",
		"SECURE_HSTS_SECONDS",
		"SESSION_COOKIE_AGE",
		"SITE_ID",
	},
	CategoryTuple: {
		"ALLOWED_HOSTS",
		"ALLOWED_INCLUDE_ROOTS",
		"AUTHENTICATION_BACKENDS",
		"DATE_INPUT_FORMATS",
		"DATETIME_INPUT_FORMATS",
		"DISALLOWED_USER_AGENTS",
		"FILE_UPLOAD_HANDLERS",
		"FIXTURE_DIRS",
		"IGNORABLE_404_URLS",
		"INSTALLED_APPS",
		"INTERNAL_IPS",
		"LOCALE_PATHS",
		"MIDDLEWARE",
		"MIDDLEWARE_CLASSES",
		"PASSWORD_HASHERS",
		"SECURE_REDIRECT_EXEMPT",
		"STATICFILES_DIRS",
		"STATICFILES_FINDERS",
		"TEMPLATE_CONTEXT_PROCESSORS",
		"TEMPLATE_DIRS",
		"TIME_INPUT_FORMATS",
	},
	CategoryNestedTuple: {
		"ADMINS",
		"LANGUAGES",
		"MANAGERS",
	},
	CategoryDictionary: {
		"DATABASE_OPTIONS",
		"SERIALIZATION_MODULES",
	},
	CategoryTreeTuple: {
		"TEMPLATE_LOADERS",
	},
	CategoryNoneIfEmpty: {
		"CACHE_MIDDLEWARE_KEY_PREFIX",
		"CSRF_COOKIE_DOMAIN",
		"EMAIL_SSL_CERTFILE",
		"EMAIL_SSL_KEYFILE",
		"FILE_UPLOAD_DIRECTORY_PERMISSIONS",
		"FILE_UPLOAD_PERMISSIONS",
		"FILE_UPLOAD_TEMP_DIR",
		"FORCE_SCRIPT_NAME",
		"SESSION_COOKIE_DOMAIN",
		"SESSION_FILE_PATH",
		"STATIC_ROOT",
		"STATIC_URL",
	},
	CategoryUnsupported: {
		"AUTH_PASSWORD_VALIDATORS",
		"CACHES",
		"DATABASES",
		"LOGGING",
		"TEMPLATES",
	},
}
