package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(14))

	for _, name := range []FontName{Regular, Bold, Title} {
		assert.True(t, loaded(name), name)
		assert.NotNil(t, name.Get())
	}
}

func TestLoadFontWithSize_RejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	require.Error(t, err)
	assert.False(t, loaded("broken"))
}

func TestGet_PanicsWhenMissing(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
