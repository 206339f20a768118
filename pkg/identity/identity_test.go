package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericSuffix(t *testing.T) {
	assert.Equal(t, int64(42), NumericSuffix("INT-42"))
	assert.Equal(t, int64(7), NumericSuffix("x-y-7"))
	assert.Equal(t, int64(0), NumericSuffix("bogus"))
	assert.Equal(t, int64(0), NumericSuffix("INT-"))
	assert.Equal(t, int64(0), NumericSuffix("INT-abc"))
	assert.Equal(t, int64(0), NumericSuffix(""))
}

func TestSnowflakeIDsArePrefixedAndIncreasing(t *testing.T) {
	gen, err := NewSnowflake(1, "INT")
	require.NoError(t, err)

	prev := int64(0)
	for i := 0; i < 100; i++ {
		id := gen.NextID()
		assert.True(t, strings.HasPrefix(id, "INT-"))
		n := NumericSuffix(id)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestSnowflakeDefaultPrefix(t *testing.T) {
	gen, err := NewSnowflake(2, "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(gen.NextID(), InternPrefix+"-"))
}
