package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
	}{
		{"valid", `{"primaryColor":"#1976d2"}`, true, http.StatusOK},
		{"malformed", `{"primaryColor":`, false, http.StatusBadRequest},
		{"wrong type", `{"primaryColor":7}`, false, http.StatusBadRequest},
		{"over limit", `{"primaryColor":"` + strings.Repeat("a", 200) + `"}`, false, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst struct {
				PrimaryColor string `json:"primaryColor"`
			}
			w := httptest.NewRecorder()
			req := httptest.NewRequest("PUT", "/api/v1/settings/theme", strings.NewReader(tt.body))

			ok := DecodeJSON(w, req, 64, &dst)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok {
				if dst.PrimaryColor != "#1976d2" {
					t.Errorf("decoded %q", dst.PrimaryColor)
				}
				return
			}
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}
