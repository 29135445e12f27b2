package theme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge_Nil(t *testing.T) {
	want := Palette{
		Primary:    ColorRole{Main: "#1976d2", Light: "#419efa", Dark: "#004eaa", ContrastText: "#ffffff"},
		Secondary:  ColorRole{Main: "#9c27b0", Light: "#c44fd8", Dark: "#740088", ContrastText: "#ffffff"},
		Success:    NewColorRole("#2e7d32"),
		Error:      NewColorRole("#d32f2f"),
		Warning:    NewColorRole("#ed6c02"),
		Info:       NewColorRole("#0288d1"),
		Background: Background{Default: "#f5f5f5", Paper: "#ffffff"},
		Text:       Text{Primary: "#212121", Secondary: "#4d4d4d"},

		LoginCardColor:  "#ffffff",
		LoginCardRadius: 12,
	}
	if diff := cmp.Diff(want, Merge(nil)); diff != "" {
		t.Errorf("Merge(nil) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Merge(nil), Merge(&Override{})); diff != "" {
		t.Errorf("empty override differs from nil (-nil +empty):\n%s", diff)
	}
}

func TestMerge_FieldByField(t *testing.T) {
	zero := 0
	ov := &Override{
		PrimaryColor:    "#000000",
		MenuColor:       "#eeeeee",
		BackgroundColor: "#fafafa",
		LoginCardRadius: &zero,
	}
	p := Merge(ov)

	if p.Primary != NewColorRole("#000000") {
		t.Errorf("Primary = %+v", p.Primary)
	}
	if p.Primary.Light != "#282828" || p.Primary.Dark != "#000000" {
		t.Errorf("Primary variants = %s/%s, want #282828/#000000", p.Primary.Light, p.Primary.Dark)
	}
	if p.Secondary.Main != DefaultPalette.Secondary {
		t.Errorf("Secondary.Main = %q, want default", p.Secondary.Main)
	}
	if p.Background.Paper != "#eeeeee" {
		t.Errorf("menuColor should drive background.paper, got %q", p.Background.Paper)
	}
	if p.Background.Default != "#fafafa" {
		t.Errorf("Background.Default = %q", p.Background.Default)
	}
	if p.LoginCardRadius != 0 {
		t.Errorf("explicit zero radius lost: %d", p.LoginCardRadius)
	}
	if p.Info.Main != DefaultPalette.Info {
		t.Errorf("Info.Main = %q, want default", p.Info.Main)
	}
}

func TestMerge_SecondaryTextFollowsTextColorField(t *testing.T) {
	p := Merge(&Override{TextColor: "#808080"})
	if p.Text.Primary != "#808080" {
		t.Errorf("Text.Primary = %q, want #808080", p.Text.Primary)
	}
	if p.Text.Secondary != "#585858" {
		t.Errorf("Text.Secondary = %q, want #585858 (textColor darkened)", p.Text.Secondary)
	}
}

func TestMerge_DoesNotMutateDefaults(t *testing.T) {
	before := DefaultPalette
	_ = Merge(&Override{PrimaryColor: "#123456", TextColor: "#654321"})
	if diff := cmp.Diff(before, DefaultPalette); diff != "" {
		t.Errorf("DefaultPalette mutated (-before +after):\n%s", diff)
	}
}

func TestOverrideValidate(t *testing.T) {
	neg, zero := -1, 0
	tests := []struct {
		name    string
		ov      Override
		wantErr string
	}{
		{"empty", Override{}, ""},
		{"valid colors", Override{PrimaryColor: "#112233", LoginCardColor: "#ABCDEF"}, ""},
		{"zero radius", Override{LoginCardRadius: &zero}, ""},
		{"bad primary", Override{PrimaryColor: "blue"}, `primaryColor: expected #rrggbb, got "blue"`},
		{"short hex", Override{MenuColor: "#fff"}, `menuColor: expected #rrggbb, got "#fff"`},
		{"negative radius", Override{LoginCardRadius: &neg}, "loginCardRadius: must be non-negative, got -1"},
		{
			"first field in declaration order wins",
			Override{TextColor: "x", SecondaryColor: "y", LoginCardColor: "z", LoginCardRadius: &neg},
			`secondaryColor: expected #rrggbb, got "y"`,
		},
		{"radius checked after colors", Override{LoginCardColor: "z", LoginCardRadius: &neg}, `loginCardColor: expected #rrggbb, got "z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ov.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
