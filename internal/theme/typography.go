package theme

import (
	"math"
	"strconv"
)

// FontFamily is the UI font stack.
const FontFamily = `"Roboto", "Helvetica", "Arial", sans-serif`

// MediaSize is a font size that applies from MinWidth upward.
type MediaSize struct {
	MinWidth int    `json:"minWidth" yaml:"minWidth"`
	FontSize string `json:"fontSize" yaml:"fontSize"`
}

// TextStyle describes one typography variant.
type TextStyle struct {
	FontSize      string      `json:"fontSize" yaml:"fontSize"`
	FontWeight    int         `json:"fontWeight" yaml:"fontWeight"`
	LineHeight    float64     `json:"lineHeight" yaml:"lineHeight"`
	Color         string      `json:"color,omitempty" yaml:"color,omitempty"`
	TextTransform string      `json:"textTransform,omitempty" yaml:"textTransform,omitempty"`
	Responsive    []MediaSize `json:"responsive,omitempty" yaml:"responsive,omitempty"`
}

// Typography is the fixed type scale.
type Typography struct {
	FontFamily string    `json:"fontFamily" yaml:"fontFamily"`
	H1         TextStyle `json:"h1" yaml:"h1"`
	H2         TextStyle `json:"h2" yaml:"h2"`
	H3         TextStyle `json:"h3" yaml:"h3"`
	H4         TextStyle `json:"h4" yaml:"h4"`
	H5         TextStyle `json:"h5" yaml:"h5"`
	H6         TextStyle `json:"h6" yaml:"h6"`
	Body1      TextStyle `json:"body1" yaml:"body1"`
	Body2      TextStyle `json:"body2" yaml:"body2"`
	Button     TextStyle `json:"button" yaml:"button"`
}

// headings returns pointers to the six heading styles in order.
func (t *Typography) headings() []*TextStyle {
	return []*TextStyle{&t.H1, &t.H2, &t.H3, &t.H4, &t.H5, &t.H6}
}

func newTypography(p Palette) Typography {
	heading := func(rem float64, lineHeight float64) TextStyle {
		return TextStyle{FontSize: remString(rem), FontWeight: 600, LineHeight: lineHeight, Color: p.Primary.Main}
	}
	return Typography{
		FontFamily: FontFamily,
		H1:         heading(2.5, 1.2),
		H2:         heading(2, 1.3),
		H3:         heading(1.75, 1.3),
		H4:         heading(1.5, 1.4),
		H5:         heading(1.25, 1.4),
		H6:         heading(1, 1.5),
		Body1:      TextStyle{FontSize: remString(1), FontWeight: 400, LineHeight: 1.5},
		Body2:      TextStyle{FontSize: remString(0.875), FontWeight: 400, LineHeight: 1.43},
		Button:     TextStyle{FontSize: remString(0.875), FontWeight: 500, LineHeight: 1.75, TextTransform: "none"},
	}
}

// scaleFactor controls how far headings shrink on the narrowest screens.
const scaleFactor = 2

// responsiveFontSizes shrinks headings larger than 1rem for the xs base
// size and adds rules that step back up to the full size at lg.
func responsiveFontSizes(t Typography, bp Breakpoints) Typography {
	steps := []int{bp.SM, bp.MD, bp.LG}
	for _, h := range t.headings() {
		size, err := parseRem(h.FontSize)
		if err != nil || size <= 1 {
			continue
		}
		minSize := 1 + (size-1)/scaleFactor

		rules := make([]MediaSize, 0, len(steps))
		for i, width := range steps {
			s := minSize + (size-minSize)*float64(i+1)/float64(len(steps))
			rules = append(rules, MediaSize{MinWidth: width, FontSize: remString(s)})
		}
		h.FontSize = remString(minSize)
		h.Responsive = rules
	}
	return t
}

func remString(v float64) string {
	v = math.Round(v*10000) / 10000
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}

func parseRem(s string) (float64, error) {
	if len(s) > 3 && s[len(s)-3:] == "rem" {
		s = s[:len(s)-3]
	}
	return strconv.ParseFloat(s, 64)
}
