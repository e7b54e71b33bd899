package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFieldsOptionality(t *testing.T) {
	samples := []any{
		NewMap("a", true, "b", 1.0, "c", ""),
		NewMap("a", true, "c", ""),
	}

	got := GroupFields(samples)
	want := []FieldGroup{
		{Key: "a", Values: []any{true, true}, Optional: false},
		{Key: "b", Values: []any{1.0}, Optional: true},
		{Key: "c", Values: []any{"", ""}, Optional: false},
	}
	assert.Equal(t, want, got)
}

func TestGroupFieldsNullIsPresent(t *testing.T) {
	got := GroupFields([]any{
		NewMap("x", nil),
		NewMap("x", 1.0),
	})
	require.Len(t, got, 1)
	assert.False(t, got[0].Optional)
	assert.Equal(t, []any{nil, 1.0}, got[0].Values)
}

func TestGroupFieldsFirstOccurrenceOrder(t *testing.T) {
	got := GroupFields([]any{
		NewMap("z", 1.0),
		NewMap("a", 1.0, "z", 2.0),
		NewMap("m", 1.0),
	})
	keys := make([]string, len(got))
	for i, g := range got {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
	for _, g := range got {
		assert.True(t, g.Optional, g.Key)
	}
}

func TestGroupFieldsSkipsNonObjects(t *testing.T) {
	got := GroupFields([]any{
		NewMap("a", 1.0),
		"not an object",
		42.0,
		NewMap("a", 2.0),
	})
	require.Len(t, got, 1)
	assert.False(t, got[0].Optional, "non-object samples must not make fields optional")
}

func TestGroupFieldsPlainMaps(t *testing.T) {
	got := GroupFields([]any{
		map[string]any{"b": 1.0, "a": 2.0},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Key)
	assert.Equal(t, "b", got[1].Key)
}

func TestGroupFieldsEmpty(t *testing.T) {
	assert.Empty(t, GroupFields(nil))
	assert.Empty(t, GroupFields([]any{NewMap()}))
}

func TestMapRepeatedKey(t *testing.T) {
	m := NewMap("a", 1.0, "b", 2.0)
	m.Set("a", 3.0)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)
	assert.True(t, m.Has("b"))
	assert.False(t, m.Has("c"))
}
