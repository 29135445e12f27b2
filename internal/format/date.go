package format

import "time"

// Named date layouts.
var layouts = map[string]string{
	"short": "01/02/2006",
	"long":  "January 2, 2006",
	"iso":   "2006-01-02",
}

// Date formats t with a named layout ("short", "long", "iso"). Any other
// layout string is passed to time.Format unchanged. The zero time formats
// as "".
func Date(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	if l, ok := layouts[layout]; ok {
		layout = l
	}
	return t.Format(layout)
}
