package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{ A int }

type sampleConf struct {
	A int `json:"a"`
}

// Test registry registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample]()
	require.NoError(t, reg.Register("s", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{A: c.A}, nil
	}))
	inst, err := reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"a": 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, inst.A)
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	require.NoError(t, reg.Register("x", func(map[string]any) (int, error) { return 1, nil }))
	assert.Error(t, reg.Register("x", func(map[string]any) (int, error) { return 2, nil }), "duplicate")
	assert.Error(t, reg.Register("y", nil), "nil factory")
	assert.Error(t, reg.Register("", func(map[string]any) (int, error) { return 0, nil }), "empty name")

	v, err := reg.Create(ModuleConfig{Type: "y"})
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.Zero(t, v)
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry[string]()
	for _, n := range []string{"b", "c", "a"} {
		name := n
		require.NoError(t, reg.Register(name, func(map[string]any) (string, error) { return name, nil }))
	}
	assert.Equal(t, []string{"a", "b", "c"}, reg.Names())
	assert.True(t, reg.Has("b"))
	assert.False(t, reg.Has("z"))
}

func TestDecode_TypeMismatch(t *testing.T) {
	var c sampleConf
	assert.Error(t, Decode(map[string]any{"a": "not-a-number"}, &c))
}
