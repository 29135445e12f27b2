package format

import "strings"

// Phone formats a North American number. Non-digits are dropped; ten digits
// render as "(AAA) BBB-CCCC", eleven digits with a leading 1 as
// "+1 (AAA) BBB-CCCC". Anything else is returned as the bare digits.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()

	switch {
	case len(d) == 10:
		return "(" + d[:3] + ") " + d[3:6] + "-" + d[6:]
	case len(d) == 11 && d[0] == '1':
		return "+1 (" + d[1:4] + ") " + d[4:7] + "-" + d[7:]
	default:
		return d
	}
}
