// Package theme resolves the sales UI theme: a palette merged from the admin
// override record and fixed defaults, plus typography, spacing, breakpoints
// and component style overrides.
package theme

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// Breakpoints are the minimum viewport widths, in px, of each size class.
type Breakpoints struct {
	XS int `json:"xs" yaml:"xs"`
	SM int `json:"sm" yaml:"sm"`
	MD int `json:"md" yaml:"md"`
	LG int `json:"lg" yaml:"lg"`
	XL int `json:"xl" yaml:"xl"`
}

// DefaultBreakpoints are fixed for every theme.
var DefaultBreakpoints = Breakpoints{XS: 0, SM: 600, MD: 900, LG: 1200, XL: 1536}

// SpacingUnit is the base spacing, in px.
const SpacingUnit = 8

// StyleOverrides maps CSS properties to values for one component.
type StyleOverrides map[string]string

// Theme is everything the UI layer needs to render. A Theme is built once
// and then only read.
type Theme struct {
	Palette     Palette                   `json:"palette" yaml:"palette"`
	Typography  Typography                `json:"typography" yaml:"typography"`
	Breakpoints Breakpoints               `json:"breakpoints" yaml:"breakpoints"`
	Spacing     int                       `json:"spacing" yaml:"spacing"`
	Components  map[string]StyleOverrides `json:"components" yaml:"components"`
}

// Assemble builds a theme around an already merged palette.
func Assemble(p Palette) Theme {
	t := Theme{
		Palette:     p,
		Typography:  newTypography(p),
		Breakpoints: DefaultBreakpoints,
		Spacing:     SpacingUnit,
		Components:  componentOverrides(p),
	}
	t.Typography = responsiveFontSizes(t.Typography, t.Breakpoints)
	return t
}

// BuildDefault returns the theme for the default palette. It never touches
// the network and is available before any session exists.
func BuildDefault() Theme {
	return Assemble(Merge(nil))
}

// Builder produces themes for the session carried by a context.
type Builder struct {
	fetcher *Fetcher
	logger  *zap.Logger
}

// NewBuilder creates a Builder backed by fetcher.
func NewBuilder(fetcher *Fetcher, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{fetcher: fetcher, logger: logger}
}

// Build reads the override for ctx's session and assembles the theme.
// Build always returns a usable theme; fetch failures yield the default.
func (b *Builder) Build(ctx context.Context) Theme {
	var ov *Override
	if b.fetcher != nil {
		ov = b.fetcher.Override(ctx)
	}
	t := Assemble(Merge(ov))
	b.logger.Debug("theme built",
		zap.Bool("override", ov != nil),
		zap.String("primary", t.Palette.Primary.Main),
	)
	return t
}

func componentOverrides(p Palette) map[string]StyleOverrides {
	px := func(n int) string { return strconv.Itoa(n) + "px" }
	return map[string]StyleOverrides{
		"container": {
			"paddingLeft":  px(2 * SpacingUnit),
			"paddingRight": px(2 * SpacingUnit),
		},
		"button": {
			"borderRadius":    px(SpacingUnit),
			"backgroundColor": p.Primary.Main,
			"color":           p.Primary.ContrastText,
			"hoverColor":      p.Primary.Dark,
		},
		"paper": {
			"backgroundColor": p.Background.Paper,
			"color":           p.Text.Primary,
		},
		"card": {
			"backgroundColor": p.Background.Paper,
			"borderRadius":    px(p.LoginCardRadius),
		},
		"loginCard": {
			"backgroundColor": p.LoginCardColor,
			"borderRadius":    px(p.LoginCardRadius),
		},
		"listItem": {
			"color":         p.Text.Primary,
			"selectedColor": p.Primary.Main,
			"hoverColor":    p.Primary.Light,
		},
		"appBar": {
			"backgroundColor": p.Background.Paper,
			"color":           p.Text.Primary,
		},
		"tableCell": {
			"color":          p.Text.Primary,
			"headColor":      p.Primary.ContrastText,
			"headBackground": p.Primary.Main,
			"borderBottom":   "1px solid " + p.Background.Default,
		},
	}
}
