// FILE: lixenwraith/settings/merge_test.go
package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMerge tests the merge policy
func TestMerge(t *testing.T) {
	t.Run("AddsAbsent", func(t *testing.T) {
		m := NewModule("tests.empty", nil)
		s := NewSettings(map[string]any{"FOO": 10, "BAR": "x"})

		warnings, err := Merge(m, s, MergeOptions{})
		require.NoError(t, err)
		assert.Empty(t, warnings)

		v, ok := m.Lookup("FOO")
		assert.True(t, ok)
		assert.Equal(t, 10, v)
		assert.Equal(t, []string{"BAR", "FOO"}, m.Names())
	})

	t.Run("ExtendsSequence", func(t *testing.T) {
		m := NewModule("tests.list", map[string]any{"MEMBER": []int{1, 2, 3}})
		s := NewSettings(map[string]any{"MEMBER": []int{8, 9}})

		warnings, err := Merge(m, s, MergeOptions{})
		require.NoError(t, err)
		assert.Empty(t, warnings)

		v, _ := m.Lookup("MEMBER")
		assert.Equal(t, []int{1, 2, 3, 8, 9}, v)
	})

	t.Run("ExtendsStringsWithTuple", func(t *testing.T) {
		m := NewModule("tests.apps", map[string]any{"INSTALLED_APPS": []string{"auth"}})
		s := NewSettings(map[string]any{"INSTALLED_APPS": Tuple{"blog", "shop"}})

		_, err := Merge(m, s, MergeOptions{})
		require.NoError(t, err)

		v, _ := m.Lookup("INSTALLED_APPS")
		assert.Equal(t, []string{"auth", "blog", "shop"}, v)
	})

	t.Run("ExtendsInterfaceSlice", func(t *testing.T) {
		m := NewModule("tests.any", map[string]any{"HOSTS": []any{"a"}})
		s := NewSettings(map[string]any{"HOSTS": Tuple{"b"}})

		_, err := Merge(m, s, MergeOptions{})
		require.NoError(t, err)

		v, _ := m.Lookup("HOSTS")
		assert.Equal(t, []any{"a", "b"}, v)
	})

	t.Run("KeepsScalar", func(t *testing.T) {
		m := NewModule("tests.mock_django_settings.one_member_module", map[string]any{"MEMBER": "FOO"})
		s := NewSettings(map[string]any{"MEMBER": "BAR"})

		warnings, err := Merge(m, s, MergeOptions{})
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, `"MEMBER" will not be overridden in tests.mock_django_settings.one_member_module`, warnings[0].String())

		v, _ := m.Lookup("MEMBER")
		assert.Equal(t, "FOO", v)
	})

	t.Run("MismatchLeavesNamespaceUnchanged", func(t *testing.T) {
		m := NewModule("tests.mismatch", map[string]any{"LIST": []int{1}})
		s := NewSettings(map[string]any{
			"AAA":  "added first in key order",
			"LIST": "not a sequence",
		})

		_, err := Merge(m, s, MergeOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConfiguration)

		_, ok := m.Lookup("AAA")
		assert.False(t, ok)
		v, _ := m.Lookup("LIST")
		assert.Equal(t, []int{1}, v)
	})

	t.Run("ElementTypeMismatch", func(t *testing.T) {
		m := NewModule("tests.ints", map[string]any{"PORTS": []int{80}})
		s := NewSettings(map[string]any{"PORTS": Tuple{"443"}})

		_, err := Merge(m, s, MergeOptions{})
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("Reserved", func(t *testing.T) {
		m := NewModule("tests.reserved", map[string]any{"__name__": "old"})
		s := NewSettings(map[string]any{"__name__": "new"})

		warnings, err := Merge(m, s, MergeOptions{Reserved: NameSet("__name__")})
		require.NoError(t, err)
		assert.Empty(t, warnings)

		v, _ := m.Lookup("__name__")
		assert.Equal(t, "new", v)
	})

	t.Run("Authoritative", func(t *testing.T) {
		m := NewModule("tests.debug", map[string]any{DebugSetting: true})
		s := NewSettings(map[string]any{DebugSetting: false})

		_, err := Merge(m, s, MergeOptions{Authoritative: NameSet(DebugSetting)})
		require.Error(t, err)

		var ce *ConfigurationError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, DebugSetting, ce.Key)

		v, _ := m.Lookup(DebugSetting)
		assert.Equal(t, true, v)
	})

	t.Run("WarningsInKeyOrder", func(t *testing.T) {
		m := NewModule("tests.order", map[string]any{"B": 1, "A": 2})
		s := NewSettings(map[string]any{"B": 3, "A": 4})

		warnings, err := Merge(m, s, MergeOptions{})
		require.NoError(t, err)
		require.Len(t, warnings, 2)
		assert.Equal(t, "A", warnings[0].Key)
		assert.Equal(t, "B", warnings[1].Key)
	})
}
