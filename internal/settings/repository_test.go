package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/HerbHall/salesdesk/internal/settings"
	"github.com/HerbHall/salesdesk/internal/testutil"
	"github.com/HerbHall/salesdesk/internal/theme"
)

func newRepo(t *testing.T) *settings.Repository {
	t.Helper()
	repo, err := settings.NewRepository(context.Background(), testutil.NewStore(t))
	if err != nil {
		t.Fatalf("NewRepository: %v", err)
	}
	return repo
}

func TestRepository_CRUD(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, settings.ErrNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}

	if err := repo.Set(ctx, "b", "1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := repo.Set(ctx, "b", "3"); err != nil {
		t.Fatalf("Set (upsert): %v", err)
	}

	got, err := repo.Get(ctx, "b")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value != "3" {
		t.Errorf("Value = %q, want 3", got.Value)
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 2 || all[0].Key != "a" || all[1].Key != "b" {
		t.Errorf("GetAll = %+v, want keys [a b]", all)
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, settings.ErrNotFound) {
		t.Errorf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestRepository_ThemeOverride(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if _, err := repo.ThemeOverride(ctx); !errors.Is(err, theme.ErrRecordNotFound) {
		t.Fatalf("ThemeOverride on empty db err = %v, want ErrRecordNotFound", err)
	}

	want := testutil.NewOverride(testutil.WithRadius(0))
	if err := repo.SaveThemeOverride(ctx, want); err != nil {
		t.Fatalf("SaveThemeOverride: %v", err)
	}
	got, err := repo.ThemeOverride(ctx)
	if err != nil {
		t.Fatalf("ThemeOverride: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ThemeOverride mismatch (-want +got):\n%s", diff)
	}
}

func TestRepository_ThemeOverrideCorrupt(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, settings.ThemeKey, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, err := repo.ThemeOverride(ctx)
	if err == nil || errors.Is(err, theme.ErrRecordNotFound) {
		t.Errorf("err = %v, want decode error", err)
	}
}

func TestRepository_FeedsFetcher(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.SaveThemeOverride(ctx, testutil.NewOverride(testutil.WithPrimary("#000000"))); err != nil {
		t.Fatalf("SaveThemeOverride: %v", err)
	}

	always := func(context.Context) bool { return true }
	ov := theme.NewFetcher(always, repo, nil).Override(ctx)
	if ov == nil {
		t.Fatal("Override() = nil, want stored record")
	}
	if ov.PrimaryColor != "#000000" {
		t.Errorf("PrimaryColor = %q, want #000000", ov.PrimaryColor)
	}
}
