package pillar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edelwud/pillar-validator/internal/services/pillar"
)

func TestTruthy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"string", "node1", true},
		{"zero int", 0, false},
		{"int", 3, true},
		{"zero uint", uint(0), false},
		{"zero float", 0.0, false},
		{"float", 0.5, true},
		{"empty list", []any{}, false},
		{"list", []any{"a"}, true},
		{"empty map", map[string]any{}, false},
		{"map", map[string]any{"a": 1}, true},
		{"struct", struct{}{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, pillar.Truthy(tt.value))
		})
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	p := pillar.NewMapPillar(nil)
	p.Set("root:name", "node1")
	p.Set("root:port", 8080)
	p.Set("root:flag", true)
	p.Set("root:flag_string", "true")
	p.Set("root:list", []any{"a", nil, 2})
	p.Set("root:single", "only")
	p.Set("root:empty", "")
	p.Set("root:null", nil)

	assert.True(t, pillar.IsSet(p, "root:name"))
	assert.False(t, pillar.IsSet(p, "root:empty"))
	assert.False(t, pillar.IsSet(p, "root:null"))
	assert.False(t, pillar.IsSet(p, "root:missing"))

	assert.Equal(t, "node1", pillar.GetString(p, "root:name"))
	assert.Equal(t, "8080", pillar.GetString(p, "root:port"))
	assert.Empty(t, pillar.GetString(p, "root:null"))
	assert.Empty(t, pillar.GetString(p, "root:missing"))

	value, isBool := pillar.GetBool(p, "root:flag")
	assert.True(t, value)
	assert.True(t, isBool)

	_, isBool = pillar.GetBool(p, "root:flag_string")
	assert.False(t, isBool)

	_, isBool = pillar.GetBool(p, "root:missing")
	assert.False(t, isBool)

	assert.Equal(t, []string{"a", "2"}, pillar.GetStringSlice(p, "root:list"))
	assert.Equal(t, []string{"only"}, pillar.GetStringSlice(p, "root:single"))
	assert.Nil(t, pillar.GetStringSlice(p, "root:empty"))
	assert.Nil(t, pillar.GetStringSlice(p, "root:missing"))
	assert.Equal(t, []string{"8080"}, pillar.GetStringSlice(p, "root:port"))
}
