package theme

import "fmt"

// Override is the admin-configurable theme record. Every field is optional:
// empty colors and a nil radius fall back to DefaultPalette field by field.
type Override struct {
	PrimaryColor    string `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty" yaml:"secondaryColor,omitempty"`
	SuccessColor    string `json:"successColor,omitempty" yaml:"successColor,omitempty"`
	ErrorColor      string `json:"errorColor,omitempty" yaml:"errorColor,omitempty"`
	WarningColor    string `json:"warningColor,omitempty" yaml:"warningColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty" yaml:"backgroundColor,omitempty"`
	MenuColor       string `json:"menuColor,omitempty" yaml:"menuColor,omitempty"`
	TextColor       string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	LoginCardColor  string `json:"loginCardColor,omitempty" yaml:"loginCardColor,omitempty"`
	LoginCardRadius *int   `json:"loginCardRadius,omitempty" yaml:"loginCardRadius,omitempty"`
}

// Validate checks every present color and the radius. Fields are checked
// in declaration order and the first failure is returned.
func (o *Override) Validate() error {
	colors := []struct {
		field string
		value string
	}{
		{"primaryColor", o.PrimaryColor},
		{"secondaryColor", o.SecondaryColor},
		{"successColor", o.SuccessColor},
		{"errorColor", o.ErrorColor},
		{"warningColor", o.WarningColor},
		{"backgroundColor", o.BackgroundColor},
		{"menuColor", o.MenuColor},
		{"textColor", o.TextColor},
		{"loginCardColor", o.LoginCardColor},
	}
	for _, c := range colors {
		if c.value != "" && !ValidHex(c.value) {
			return fmt.Errorf("%s: expected #rrggbb, got %q", c.field, c.value)
		}
	}
	if o.LoginCardRadius != nil && *o.LoginCardRadius < 0 {
		return fmt.Errorf("loginCardRadius: must be non-negative, got %d", *o.LoginCardRadius)
	}
	return nil
}

// Defaults holds the source values every build falls back to. Derived
// variants are never stored here.
type Defaults struct {
	Primary         string
	Secondary       string
	Success         string
	Error           string
	Warning         string
	Info            string
	Background      string
	Paper           string
	TextPrimary     string
	TextSecondary   string
	LoginCardColor  string
	LoginCardRadius int
}

// DefaultPalette is the fallback used when no override exists, no session is
// present, or the override could not be fetched.
var DefaultPalette = Defaults{
	Primary:         "#1976d2",
	Secondary:       "#9c27b0",
	Success:         "#2e7d32",
	Error:           "#d32f2f",
	Warning:         "#ed6c02",
	Info:            "#0288d1",
	Background:      "#f5f5f5",
	Paper:           "#ffffff",
	TextPrimary:     "#212121",
	TextSecondary:   "#757575",
	LoginCardColor:  "#ffffff",
	LoginCardRadius: 12,
}

// ColorRole is a main color plus its derived variants.
type ColorRole struct {
	Main         string `json:"main" yaml:"main"`
	Light        string `json:"light" yaml:"light"`
	Dark         string `json:"dark" yaml:"dark"`
	ContrastText string `json:"contrastText" yaml:"contrastText"`
}

// Background holds the page and surface colors.
type Background struct {
	Default string `json:"default" yaml:"default"`
	Paper   string `json:"paper" yaml:"paper"`
}

// Text holds the foreground colors.
type Text struct {
	Primary   string `json:"primary" yaml:"primary"`
	Secondary string `json:"secondary" yaml:"secondary"`
}

// Palette is the full set of semantic colors consumed by the UI layer.
// Palettes are plain values; each build produces a new one.
type Palette struct {
	Primary         ColorRole  `json:"primary" yaml:"primary"`
	Secondary       ColorRole  `json:"secondary" yaml:"secondary"`
	Success         ColorRole  `json:"success" yaml:"success"`
	Error           ColorRole  `json:"error" yaml:"error"`
	Warning         ColorRole  `json:"warning" yaml:"warning"`
	Info            ColorRole  `json:"info" yaml:"info"`
	Background      Background `json:"background" yaml:"background"`
	Text            Text       `json:"text" yaml:"text"`
	LoginCardColor  string     `json:"loginCardColor" yaml:"loginCardColor"`
	LoginCardRadius int        `json:"loginCardRadius" yaml:"loginCardRadius"`
}

// NewColorRole derives a ColorRole from its main color.
func NewColorRole(main string) ColorRole {
	return ColorRole{
		Main:         main,
		Light:        Adjust(main, lightOffset),
		Dark:         Adjust(main, darkOffset),
		ContrastText: contrastText,
	}
}

// Merge combines an override with DefaultPalette. A nil override yields the
// derived default palette. Merge never fails and always returns every role.
func Merge(ov *Override) Palette {
	if ov == nil {
		ov = &Override{}
	}
	d := DefaultPalette

	radius := d.LoginCardRadius
	if ov.LoginCardRadius != nil {
		radius = *ov.LoginCardRadius
	}

	return Palette{
		Primary:   NewColorRole(pick(ov.PrimaryColor, d.Primary)),
		Secondary: NewColorRole(pick(ov.SecondaryColor, d.Secondary)),
		Success:   NewColorRole(pick(ov.SuccessColor, d.Success)),
		Error:     NewColorRole(pick(ov.ErrorColor, d.Error)),
		Warning:   NewColorRole(pick(ov.WarningColor, d.Warning)),
		Info:      NewColorRole(d.Info),
		Background: Background{
			Default: pick(ov.BackgroundColor, d.Background),
			Paper:   pick(ov.MenuColor, d.Paper),
		},
		Text: Text{
			Primary: pick(ov.TextColor, d.TextPrimary),
			// Secondary text reads the override's textColor field, falling back
			// to the default secondary source, not the resolved primary text.
			Secondary: Adjust(pick(ov.TextColor, d.TextSecondary), darkOffset),
		},
		LoginCardColor:  pick(ov.LoginCardColor, d.LoginCardColor),
		LoginCardRadius: radius,
	}
}

func pick(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}
