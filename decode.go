// FILE: lixenwraith/settings/decode.go
package settings

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag Scan reads attribute names from
const TagName = "setting"

// Scan decodes the module attributes into target, a non-nil pointer to a
// struct or map. Struct fields name their attribute with the `setting` tag.
func (m *Module) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			dictToMapHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(m.Snapshot()); err != nil {
		return fmt.Errorf("decode failed for module %q: %w", m.name, err)
	}
	return nil
}

// dictToMapHookFunc exposes Dict values as plain maps to the decoder
func dictToMapHookFunc() mapstructure.DecodeHookFunc {
	dictType := reflect.TypeOf(Dict{})
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != dictType || t == dictType {
			return data, nil
		}
		return data.(Dict).Map(), nil
	}
}
