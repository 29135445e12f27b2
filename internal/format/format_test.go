package format

import (
	"strings"
	"testing"
	"time"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		code   string
		locale string
		want   string
	}{
		{"dollars", 1234.5, "USD", "en-US", "$1,234.50"},
		{"negative", -12, "USD", "en-US", "-$12.00"},
		{"zero", 0, "USD", "en-US", "$0.00"},
		{"yen has no decimals", 1235, "JPY", "en-US", "¥1,235"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Currency(tt.amount, tt.code, tt.locale)
			if err != nil {
				t.Fatalf("Currency: %v", err)
			}
			if got != tt.want {
				t.Errorf("Currency(%v, %s, %s) = %q, want %q", tt.amount, tt.code, tt.locale, got, tt.want)
			}
		})
	}
}

func TestCurrency_LocaleGrouping(t *testing.T) {
	got, err := Formatter{Currency: "EUR", Locale: "de-DE"}.Money(1234.5)
	if err != nil {
		t.Fatalf("Money: %v", err)
	}
	if !strings.Contains(got, "1.234,50") {
		t.Errorf("Money = %q, want German grouping 1.234,50", got)
	}
}

func TestCurrency_Errors(t *testing.T) {
	if _, err := Currency(1, "US", "en-US"); err == nil {
		t.Error("expected error for malformed currency code")
	}
	if _, err := Currency(1, "USD", "not a locale!"); err == nil {
		t.Error("expected error for malformed locale")
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"(555) 123 4567", "(555) 123-4567"},
		{"1 555 123 4567", "+1 (555) 123-4567"},
		{"+1-555-123-4567", "+1 (555) 123-4567"},
		{"25551234567", "25551234567"},
		{"12345", "12345"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Phone(tt.in); got != tt.want {
			t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2026, time.March, 7, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"short", "03/07/2026"},
		{"long", "March 7, 2026"},
		{"iso", "2026-03-07"},
		{"2006", "2026"},
	}
	for _, tt := range tests {
		if got := Date(d, tt.layout); got != tt.want {
			t.Errorf("Date(%s) = %q, want %q", tt.layout, got, tt.want)
		}
	}
	if got := Date(time.Time{}, "iso"); got != "" {
		t.Errorf("zero time = %q, want empty", got)
	}
}
