package server

import (
	"bufio"
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/HerbHall/salesdesk/internal/version"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Requests are labelled by the ServeMux pattern they matched, so label
// cardinality is bounded by the route table.
const unmatchedRoute = "unmatched"

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salesdesk_http_requests_total",
			Help: "HTTP requests by method, matched route and status.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salesdesk_http_request_duration_seconds",
			Help:    "Duration of request/response HTTP calls. Streams are excluded.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	httpStreamsOpen = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "salesdesk_http_streams_open",
			Help: "Long-lived streams currently attached, by route.",
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, httpStreamsOpen)
}

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middleware in order (first argument is outermost).
func Chain(handler http.Handler, mw ...Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		handler = mw[i](handler)
	}
	return handler
}

type routeClass int

const (
	classAPI routeClass = iota
	classQuiet
	classStream
)

// Routes tells the middleware how to treat request paths.
type Routes struct {
	// Quiet paths (exact match) are probes and scrapes: counted, never
	// logged, never rate limited.
	Quiet []string
	// Streams (prefix match) stay open for the life of a client. They are
	// logged when they close, tracked by the open-streams gauge, and never
	// rate limited or put in the duration histogram.
	Streams []string
	// Docs (prefix match) is served with a CSP that lets Swagger UI load
	// its scripts and styles. Empty disables it.
	Docs string
}

func (rt Routes) classify(path string) routeClass {
	for _, p := range rt.Quiet {
		if path == p {
			return classQuiet
		}
	}
	for _, p := range rt.Streams {
		if strings.HasPrefix(path, p) {
			return classStream
		}
	}
	return classAPI
}

// routeLabel returns the pattern mux would dispatch r to.
func routeLabel(mux *http.ServeMux, r *http.Request) string {
	if mux == nil {
		return unmatchedRoute
	}
	if _, pattern := mux.Handler(r); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}

type requestIDKey struct{}

// RequestID returns the request ID from the context.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDMiddleware propagates X-Request-ID or assigns a new UUID.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// LoggingMiddleware logs API requests and closed streams and records the
// HTTP metrics, labelling each request with the mux route it matched.
func LoggingMiddleware(logger *zap.Logger, mux *http.ServeMux, routes Routes) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			class := routes.classify(r.URL.Path)
			route := routeLabel(mux, r)
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			if class == classStream {
				httpStreamsOpen.WithLabelValues(route).Inc()
				defer httpStreamsOpen.WithLabelValues(route).Dec()
			}

			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", sw.status),
				zap.Duration("duration", elapsed),
				zap.String("request_id", RequestID(r.Context())),
			}
			switch class {
			case classQuiet:
			case classStream:
				logger.Info("stream closed", append(fields, zap.String("remote", clientIP(r)))...)
			default:
				httpRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
				logger.Info("http request", append(fields, zap.String("remote", clientIP(r)))...)
			}
		})
	}
}

// Content security policies. The API only ever returns JSON; the docs UI
// needs its own bundle plus inline bootstrap code.
const (
	apiCSP  = "default-src 'none'; frame-ancestors 'none'"
	docsCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'"
)

// SecurityHeadersMiddleware sets the browser hardening headers.
func SecurityHeadersMiddleware(routes Routes) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")
			if routes.Docs != "" && strings.HasPrefix(r.URL.Path, routes.Docs) {
				h.Set("Content-Security-Policy", docsCSP)
			} else {
				h.Set("Content-Security-Policy", apiCSP)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BuildHeadersMiddleware stamps every response with the build version and,
// when themeState is set, whether the served theme is still the default or
// already resolved. Clients use the latter to decide when to refetch.
func BuildHeadersMiddleware(themeState func() string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Salesdesk-Version", version.Short())
			if themeState != nil {
				w.Header().Set("X-Salesdesk-Theme-State", themeState())
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RecoveryMiddleware turns handler panics into 500 problem responses.
func RecoveryMiddleware(logger *zap.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
					zap.String("request_id", RequestID(r.Context())),
				)
				InternalError(w, "an unexpected error occurred", r.URL.Path)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware applies a per-client token bucket to API routes.
// Rejected requests get a 429 with Retry-After.
func RateLimitMiddleware(rps float64, burst int, routes Routes) Middleware {
	limiters := newLimiterSet(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if routes.classify(r.URL.Path) != classAPI {
				next.ServeHTTP(w, r)
				return
			}
			if wait := limiters.reserve(clientIP(r)); wait > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				RateLimited(w, "rate limit exceeded", r.URL.Path)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Idle limiters are swept once the table reaches maxLimiters entries.
const (
	maxLimiters  = 10000
	limiterIdle  = 10 * time.Minute
	maxRetryWait = time.Hour
)

type limiterSet struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLimiterSet(limit rate.Limit, burst int) *limiterSet {
	return &limiterSet{limit: limit, burst: burst, buckets: make(map[string]*bucket)}
}

// reserve takes a token for key. It returns zero when the request may
// proceed, otherwise how long until a token is available.
func (s *limiterSet) reserve(key string) time.Duration {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok {
		if len(s.buckets) >= maxLimiters {
			s.sweep(now)
		}
		b = &bucket{lim: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.seen = now

	res := b.lim.ReserveN(now, 1)
	if !res.OK() {
		return maxRetryWait
	}
	if d := res.DelayFrom(now); d > 0 {
		res.CancelAt(now)
		return d
	}
	return 0
}

// sweep drops buckets idle for longer than limiterIdle. s.mu must be held.
func (s *limiterSet) sweep(now time.Time) {
	for key, b := range s.buckets {
		if now.Sub(b.seen) > limiterIdle {
			delete(s.buckets, key)
		}
	}
}

// clientIP prefers the first X-Forwarded-For hop, then RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// statusWriter records the status code written through it.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

// Hijack lets websocket upgrades pass through the wrapper. A hijacked
// connection is recorded as 101.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	w.wroteHeader = true
	w.status = http.StatusSwitchingProtocols
	return hj.Hijack()
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
