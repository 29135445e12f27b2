package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildDefault(t *testing.T) {
	th := BuildDefault()

	if diff := cmp.Diff(DefaultBreakpoints, th.Breakpoints); diff != "" {
		t.Errorf("breakpoints mismatch (-want +got):\n%s", diff)
	}
	if th.Breakpoints != (Breakpoints{0, 600, 900, 1200, 1536}) {
		t.Errorf("Breakpoints = %+v", th.Breakpoints)
	}
	if th.Spacing != 8 {
		t.Errorf("Spacing = %d, want 8", th.Spacing)
	}
	if th.Palette != Merge(nil) {
		t.Error("default theme palette differs from Merge(nil)")
	}
	for _, name := range []string{"container", "button", "paper", "card", "loginCard", "listItem", "appBar", "tableCell"} {
		if _, ok := th.Components[name]; !ok {
			t.Errorf("missing component overrides for %q", name)
		}
	}
	if got := th.Components["loginCard"]["borderRadius"]; got != "12px" {
		t.Errorf("loginCard borderRadius = %q, want 12px", got)
	}
}

func TestBuild_UsesOverride(t *testing.T) {
	radius := 4
	src := &fakeSource{ov: Override{PrimaryColor: "#000000", LoginCardRadius: &radius}}
	b := NewBuilder(NewFetcher(always, src, nil), nil)

	th := b.Build(context.Background())
	if th.Palette.Primary.Main != "#000000" {
		t.Errorf("Primary.Main = %q", th.Palette.Primary.Main)
	}
	if th.Typography.H1.Color != "#000000" {
		t.Errorf("heading color = %q, want primary main", th.Typography.H1.Color)
	}
	if got := th.Components["button"]["backgroundColor"]; got != "#000000" {
		t.Errorf("button backgroundColor = %q", got)
	}
	if got := th.Components["loginCard"]["borderRadius"]; got != "4px" {
		t.Errorf("loginCard borderRadius = %q, want 4px", got)
	}
}

func TestBuild_FailOpen(t *testing.T) {
	want := BuildDefault()

	tests := []struct {
		name    string
		fetcher *Fetcher
	}{
		{"nil fetcher", nil},
		{"no session", NewFetcher(never, &fakeSource{ov: Override{PrimaryColor: "#000000"}}, nil)},
		{"not found", NewFetcher(always, &fakeSource{err: ErrRecordNotFound}, nil)},
		{"transport", NewFetcher(always, &fakeSource{err: errors.New("boom")}, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBuilder(tt.fetcher, nil).Build(context.Background())
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Build mismatch (-default +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_IndependentResults(t *testing.T) {
	a := BuildDefault()
	b := BuildDefault()
	a.Components["button"]["color"] = "#123456"
	if b.Components["button"]["color"] == "#123456" {
		t.Error("themes share component override maps")
	}
}
