package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Offsets used to derive the light and dark variants of a color role.
const (
	lightOffset = 40
	darkOffset  = -40
)

// contrastText is the fixed foreground for every color role.
const contrastText = "#ffffff"

// Adjust lightens (positive amount) or darkens (negative amount) a hex color
// by adding amount to each 8-bit channel and clamping the result to [0, 255].
//
// The input is 6 hex digits with an optional leading '#'. Input is not
// validated: digits that fail to parse are read as zero, so malformed colors
// produce a deterministic but meaningless result. The output is always
// lowercase "#rrggbb".
func Adjust(color string, amount int) string {
	num, err := strconv.ParseUint(strings.TrimPrefix(color, "#"), 16, 32)
	if err != nil {
		num = 0
	}

	// Any offset beyond a full channel saturates the same way; bounding it
	// first keeps the sums below from overflowing.
	amount = max(-255, min(amount, 255))

	r := clampChannel(int(num>>16) + amount)
	g := clampChannel(int((num>>8)&0xff) + amount)
	b := clampChannel(int(num&0xff) + amount)

	return fmt.Sprintf("#%06x", r<<16|g<<8|b)
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// ValidHex reports whether s is a "#rrggbb" color.
func ValidHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}
