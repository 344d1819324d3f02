package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactoryFromConfig(t *testing.T) {
	f, err := NewFactoryFromConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Internet", "Mobile"}, f.Categories())

	f, err = NewFactoryFromConfig(Config{Categories: []string{"Internet"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Internet"}, f.Categories())
	_, err = f.Create("Mobile")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, Config{Categories: []string{"Satellite"}}.Validate(), ErrUnknownCategory)
	assert.Error(t, Config{Categories: []string{"Mobile", "Mobile"}}.Validate())
	assert.NoError(t, Config{Categories: []string{"Mobile", "Internet"}}.Validate())

	_, err := NewFactoryFromConfig(Config{Categories: []string{"mobile"}})
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
