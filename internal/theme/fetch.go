package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ErrRecordNotFound is returned by an OverrideSource when no theme record
// has been stored.
var ErrRecordNotFound = errors.New("theme record not found")

// Reason classifies why a fetch produced no override.
type Reason string

const (
	ReasonNoSession Reason = "no_session"
	ReasonNotFound  Reason = "not_found"
	ReasonTransport Reason = "transport"
)

// FetchError describes a fetch that produced no override. Every FetchError
// collapses to the default palette.
type FetchError struct {
	Reason Reason
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("theme fetch %s: %v", e.Reason, e.Err)
	}
	return "theme fetch " + string(e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Session reports whether ctx carries an authenticated session.
type Session func(ctx context.Context) bool

// OverrideSource performs the point read of the stored theme record.
// Implementations return ErrRecordNotFound (possibly wrapped) when absent.
type OverrideSource interface {
	ThemeOverride(ctx context.Context) (Override, error)
}

var fetchFallbacks = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "salesdesk_theme_fetch_fallbacks_total",
		Help: "Theme fetches that fell back to the default palette, by reason.",
	},
	[]string{"reason"},
)

func init() {
	prometheus.MustRegister(fetchFallbacks)
}

// Fetcher reads the theme override for the current session.
type Fetcher struct {
	session Session
	source  OverrideSource
	logger  *zap.Logger
}

// NewFetcher creates a Fetcher. A nil session predicate is treated as
// "never authenticated".
func NewFetcher(session Session, source OverrideSource, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{session: session, source: source, logger: logger}
}

// Fetch performs a single read of the theme record. The returned error, when
// non-nil, is always a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context) (Override, error) {
	if f.session == nil || !f.session(ctx) {
		return Override{}, &FetchError{Reason: ReasonNoSession}
	}
	if f.source == nil {
		return Override{}, &FetchError{Reason: ReasonNotFound}
	}

	ov, err := f.source.ThemeOverride(ctx)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return Override{}, &FetchError{Reason: ReasonNotFound, Err: err}
		}
		return Override{}, &FetchError{Reason: ReasonTransport, Err: err}
	}
	return ov, nil
}

// Override returns the stored override, or nil when there is none for any
// reason. Failures are logged and counted, never returned.
func (f *Fetcher) Override(ctx context.Context) *Override {
	ov, err := f.Fetch(ctx)
	if err == nil {
		return &ov
	}

	var fe *FetchError
	reason := ReasonTransport
	if errors.As(err, &fe) {
		reason = fe.Reason
	}
	fetchFallbacks.WithLabelValues(string(reason)).Inc()

	if reason == ReasonTransport {
		f.logger.Warn("theme fetch failed, using default palette", zap.Error(err))
	} else {
		f.logger.Debug("no theme override", zap.String("reason", string(reason)))
	}
	return nil
}

// CollapseFetch maps the result of Fetch to a palette. Any error, whatever
// its reason, yields the default palette.
func CollapseFetch(ov Override, err error) Palette {
	if err != nil {
		return Merge(nil)
	}
	return Merge(&ov)
}
