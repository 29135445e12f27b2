package theme

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type ctxKey struct{}

func setupHandlerEnv(t *testing.T) *http.ServeMux {
	t.Helper()
	src := &fakeSource{ov: Override{PrimaryColor: "#000000"}}
	session := func(ctx context.Context) bool { return ctx.Value(ctxKey{}) != nil }
	b := NewBuilder(NewFetcher(session, src, nil), nil)

	mux := http.NewServeMux()
	NewHandler(b, NewHolder(b, nil), nil).RegisterRoutes(mux)
	return mux
}

func getTheme(t *testing.T, mux *http.ServeMux, path string, authed bool) Theme {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if authed {
		req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, true))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d", path, w.Code)
	}
	var th Theme
	if err := json.NewDecoder(w.Body).Decode(&th); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return th
}

func TestHandleBuild(t *testing.T) {
	mux := setupHandlerEnv(t)

	if got := getTheme(t, mux, "/api/v1/theme", true).Palette.Primary.Main; got != "#000000" {
		t.Errorf("authenticated primary = %q, want override", got)
	}
	if got := getTheme(t, mux, "/api/v1/theme", false).Palette.Primary.Main; got != DefaultPalette.Primary {
		t.Errorf("anonymous primary = %q, want default", got)
	}
	if got := getTheme(t, mux, "/api/v1/theme/default", true).Palette.Primary.Main; got != DefaultPalette.Primary {
		t.Errorf("default primary = %q", got)
	}
}

func TestHandleCurrent(t *testing.T) {
	mux := setupHandlerEnv(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/theme/current", nil))
	var snap Snapshot
	if err := json.NewDecoder(w.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.State != StateDefault {
		t.Errorf("State = %q, want default", snap.State)
	}
}
