package server

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var testRoutes = Routes{
	Quiet:   []string{"/healthz"},
	Streams: []string{"/api/v1/ws/"},
	Docs:    "/swagger/",
}

func testLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func status(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

func TestRoutesClassify(t *testing.T) {
	tests := []struct {
		path string
		want routeClass
	}{
		{"/healthz", classQuiet},
		{"/healthz/extra", classAPI},
		{"/api/v1/ws/theme", classStream},
		{"/api/v1/ws", classAPI},
		{"/api/v1/theme", classAPI},
		{"/swagger/index.html", classAPI},
	}
	for _, tt := range tests {
		if got := testRoutes.classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestRouteLabel(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /api/v1/theme", status(http.StatusOK))
	mux.Handle("PUT /api/v1/settings/theme", status(http.StatusOK))

	tests := []struct {
		name   string
		mux    *http.ServeMux
		method string
		path   string
		want   string
	}{
		{"exact route", mux, "GET", "/api/v1/theme", "GET /api/v1/theme"},
		{"query ignored", mux, "GET", "/api/v1/theme?x=1", "GET /api/v1/theme"},
		{"method route", mux, "PUT", "/api/v1/settings/theme", "PUT /api/v1/settings/theme"},
		{"unknown path", mux, "GET", "/api/v1/clients/42", unmatchedRoute},
		{"no mux", nil, "GET", "/api/v1/theme", unmatchedRoute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := routeLabel(tt.mux, httptest.NewRequest(tt.method, tt.path, http.NoBody))
			if got != tt.want {
				t.Errorf("routeLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"assigns uuid", ""},
		{"propagates caller id", "quote-7781"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestID(r.Context())
			}))

			req := httptest.NewRequest("GET", "/api/v1/theme", http.NoBody)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if got := w.Header().Get("X-Request-ID"); got != seen {
				t.Errorf("header %q != context %q", got, seen)
			}
			if tt.incoming != "" {
				if seen != tt.incoming {
					t.Errorf("id = %q, want %q", seen, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("generated id %q is not a uuid: %v", seen, err)
			}
		})
	}
}

func TestLoggingMiddleware_APIRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	const route = "POST /api/v1/logtest/api"
	mux := http.NewServeMux()
	mux.Handle(route, status(http.StatusCreated))

	counter := httpRequestsTotal.WithLabelValues("POST", route, "201")
	before := promtest.ToFloat64(counter)

	handler := LoggingMiddleware(zap.New(core), mux, testRoutes)(mux)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/logtest/api", http.NoBody))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	if got := promtest.ToFloat64(counter) - before; got != 1 {
		t.Errorf("requests_total delta = %v, want 1", got)
	}
	if !httpRequestDuration.DeleteLabelValues("POST", route) {
		t.Error("expected a duration observation for the API route")
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("got %d request log entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["route"]; got != route {
		t.Errorf("logged route = %v, want %q", got, route)
	}
}

func TestLoggingMiddleware_QuietPath(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	handler := LoggingMiddleware(zap.New(core), nil, testRoutes)(status(http.StatusOK))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", http.NoBody))

	if logs.Len() != 0 {
		t.Errorf("quiet path produced %d log entries", logs.Len())
	}
}

func TestLoggingMiddleware_Stream(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	const route = "GET /api/v1/ws/logtest"
	gauge := httpStreamsOpen.WithLabelValues(route)

	mux := http.NewServeMux()
	var during float64
	mux.HandleFunc(route, func(w http.ResponseWriter, _ *http.Request) {
		during = promtest.ToFloat64(gauge)
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(zap.New(core), mux, testRoutes)(mux)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/ws/logtest", http.NoBody))

	if during != 1 {
		t.Errorf("open streams while attached = %v, want 1", during)
	}
	if after := promtest.ToFloat64(gauge); after != 0 {
		t.Errorf("open streams after close = %v, want 0", after)
	}
	if httpRequestDuration.DeleteLabelValues("GET", route) {
		t.Error("stream must not be observed in the duration histogram")
	}
	if n := logs.FilterMessage("stream closed").Len(); n != 1 {
		t.Errorf("stream closed entries = %d, want 1", n)
	}
	if n := logs.FilterMessage("http request").Len(); n != 0 {
		t.Errorf("stream logged as http request %d times", n)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		routes  Routes
		path    string
		wantCSP string
	}{
		{"api", testRoutes, "/api/v1/theme", apiCSP},
		{"docs", testRoutes, "/swagger/index.html", docsCSP},
		{"docs disabled", Routes{}, "/swagger/index.html", apiCSP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			SecurityHeadersMiddleware(tt.routes)(status(http.StatusOK)).
				ServeHTTP(w, httptest.NewRequest("GET", tt.path, http.NoBody))

			if got := w.Header().Get("Content-Security-Policy"); got != tt.wantCSP {
				t.Errorf("CSP = %q, want %q", got, tt.wantCSP)
			}
			if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
				t.Errorf("X-Content-Type-Options = %q", got)
			}
			if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
				t.Errorf("X-Frame-Options = %q", got)
			}
		})
	}
}

func TestBuildHeadersMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	BuildHeadersMiddleware(nil)(status(http.StatusOK)).ServeHTTP(w, httptest.NewRequest("GET", "/", http.NoBody))
	if w.Header().Get("X-Salesdesk-Version") == "" {
		t.Error("missing X-Salesdesk-Version")
	}
	if _, ok := w.Header()["X-Salesdesk-Theme-State"]; ok {
		t.Error("theme state header set without a source")
	}

	w = httptest.NewRecorder()
	BuildHeadersMiddleware(func() string { return "resolved" })(status(http.StatusOK)).
		ServeHTTP(w, httptest.NewRequest("GET", "/", http.NoBody))
	if got := w.Header().Get("X-Salesdesk-Theme-State"); got != "resolved" {
		t.Errorf("X-Salesdesk-Theme-State = %q, want resolved", got)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	handler := RecoveryMiddleware(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/theme", http.NoBody))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRecoveryMiddleware_AbortHandlerPropagates(t *testing.T) {
	handler := RecoveryMiddleware(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", http.NoBody))
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := RateLimitMiddleware(0.5, 1, testRoutes)(status(http.StatusOK))

	send := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", path, http.NoBody)
		req.RemoteAddr = "203.0.113.9:5000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	if w := send("/api/v1/theme"); w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}
	w := send("/api/v1/theme")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	retry, err := strconv.Atoi(w.Header().Get("Retry-After"))
	if err != nil || retry < 1 || retry > 2 {
		t.Errorf("Retry-After = %q, want 1 or 2 seconds", w.Header().Get("Retry-After"))
	}

	for _, path := range []string{"/healthz", "/api/v1/ws/theme"} {
		for i := 0; i < 5; i++ {
			if w := send(path); w.Code != http.StatusOK {
				t.Fatalf("%s request %d status = %d, want 200", path, i, w.Code)
			}
		}
	}
}

func TestLimiterSet_RejectedReservationKeepsToken(t *testing.T) {
	s := newLimiterSet(0.001, 1)
	if d := s.reserve("a"); d != 0 {
		t.Fatalf("first reserve wait = %v, want 0", d)
	}
	for i := 0; i < 3; i++ {
		if d := s.reserve("a"); d <= 0 {
			t.Fatalf("reserve %d wait = %v, want > 0", i, d)
		}
	}
	if d := s.reserve("b"); d != 0 {
		t.Errorf("other client wait = %v, want 0", d)
	}
}

func TestLimiterSet_Sweep(t *testing.T) {
	s := newLimiterSet(1, 1)
	s.reserve("stale")
	s.reserve("fresh")
	s.buckets["stale"].seen = time.Now().Add(-2 * limiterIdle)

	s.sweep(time.Now())

	if _, ok := s.buckets["stale"]; ok {
		t.Error("stale bucket survived sweep")
	}
	if _, ok := s.buckets["fresh"]; !ok {
		t.Error("fresh bucket was swept")
	}
}

func TestChain(t *testing.T) {
	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", http.NoBody))

	want := []string{"outer", "inner", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		xff    string
		want   string
	}{
		{"remote addr", "192.0.2.10:4433", "", "192.0.2.10"},
		{"first forwarded hop", "127.0.0.1:80", "198.51.100.4, 10.0.0.1", "198.51.100.4"},
		{"remote without port", "192.0.2.11", "", "192.0.2.11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", http.NoBody)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusWriter(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	sw.WriteHeader(http.StatusConflict)
	sw.WriteHeader(http.StatusNotFound)
	if sw.status != http.StatusConflict {
		t.Errorf("status = %d, want first write 409", sw.status)
	}

	if _, _, err := sw.Hijack(); err == nil {
		t.Error("expected error hijacking a recorder")
	}
	if _, ok := sw.Unwrap().(*httptest.ResponseRecorder); !ok {
		t.Error("Unwrap did not return the wrapped writer")
	}
}
