package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"":                 "",
		"plato":            "P",
		"john doe":         "JD",
		"  maria  clara  ": "MC",
		"ana b. citra":     "AB",
	}
	for in, want := range cases {
		assert.Equal(t, want, Initials(in), "input %q", in)
	}
}

func TestHueKnownValues(t *testing.T) {
	// h("A") = 65; h("Ab") = 98 + 31*65 = 2113, 2113 mod 360 = 313.
	assert.Equal(t, 65, Hue("A"))
	assert.Equal(t, 313, Hue("Ab"))
	assert.Equal(t, 0, Hue(""))
}

func TestHueIsStableAndInRange(t *testing.T) {
	names := []string{"john doe", "Ana Silva", "张伟", "a very long name indeed", "x"}
	for _, n := range names {
		h := Hue(n)
		assert.GreaterOrEqual(t, h, 0)
		assert.Less(t, h, 360)
		assert.Equal(t, h, Hue(n))
	}
}
