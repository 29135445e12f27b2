package testutil

import "github.com/HerbHall/salesdesk/internal/theme"

// NewOverride returns a fully populated theme override suitable for test
// fixtures. Override individual fields with the With* options.
func NewOverride(opts ...func(*theme.Override)) theme.Override {
	radius := 16
	ov := theme.Override{
		PrimaryColor:    "#3366cc",
		SecondaryColor:  "#663399",
		SuccessColor:    "#228822",
		ErrorColor:      "#cc2222",
		WarningColor:    "#ee8800",
		BackgroundColor: "#fafafa",
		MenuColor:       "#eeeeee",
		TextColor:       "#808080",
		LoginCardColor:  "#fefefe",
		LoginCardRadius: &radius,
	}
	for _, opt := range opts {
		opt(&ov)
	}
	return ov
}

// WithPrimary sets the primary color.
func WithPrimary(c string) func(*theme.Override) {
	return func(ov *theme.Override) { ov.PrimaryColor = c }
}

// WithTextColor sets the text color.
func WithTextColor(c string) func(*theme.Override) {
	return func(ov *theme.Override) { ov.TextColor = c }
}

// WithMenuColor sets the menu color.
func WithMenuColor(c string) func(*theme.Override) {
	return func(ov *theme.Override) { ov.MenuColor = c }
}

// WithRadius sets the login card radius.
func WithRadius(r int) func(*theme.Override) {
	return func(ov *theme.Override) { ov.LoginCardRadius = &r }
}

// WithoutRadius clears the login card radius.
func WithoutRadius() func(*theme.Override) {
	return func(ov *theme.Override) { ov.LoginCardRadius = nil }
}
