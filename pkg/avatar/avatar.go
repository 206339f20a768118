// Package avatar derives cosmetic display attributes from a record's name:
// initials for the badge text and a stable hue for its background color.
package avatar

import "strings"

// Initials returns the uppercased first letter of each of the first two
// whitespace-separated tokens of name. Empty input yields "".
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	var b strings.Builder
	for _, f := range fields {
		r := []rune(f)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// Hue maps a string to [0,360) via a rolling character-code hash with 32-bit
// wrapping arithmetic, so the same input yields the same hue on every
// platform. Not a cryptographic hash; only used for avatar coloring.
func Hue(s string) int {
	var h int32
	for _, c := range s {
		h = int32(c) + (h << 5) - h
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % 360)
}
