package theme

import (
	"context"
	"sync"
	"time"

	"github.com/HerbHall/salesdesk/internal/event"
	"go.uber.org/zap"
)

// State distinguishes the immediately available default theme from one
// resolved against the stored override.
type State string

const (
	StateDefault  State = "default"
	StateResolved State = "resolved"
)

// Snapshot is one published theme.
type Snapshot struct {
	State     State     `json:"state"`
	Theme     Theme     `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventSubscriber is the subset of the event bus the holder listens on.
type EventSubscriber interface {
	Subscribe(topic string, handler event.Handler) (unsubscribe func())
}

// Holder owns the application's active theme. It starts with the default
// theme and moves to StateResolved on the first successful Refresh; later
// refreshes replace the theme wholesale.
type Holder struct {
	builder *Builder
	logger  *zap.Logger

	mu      sync.RWMutex
	current Snapshot
	subs    map[uint64]chan Snapshot
	nextID  uint64
}

// NewHolder creates a Holder holding BuildDefault().
func NewHolder(builder *Builder, logger *zap.Logger) *Holder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Holder{
		builder: builder,
		logger:  logger,
		current: Snapshot{State: StateDefault, Theme: BuildDefault(), UpdatedAt: time.Now().UTC()},
		subs:    make(map[uint64]chan Snapshot),
	}
}

// Current returns the active snapshot.
func (h *Holder) Current() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Refresh builds a theme for ctx's session and publishes it.
func (h *Holder) Refresh(ctx context.Context) Snapshot {
	t := h.builder.Build(ctx)
	return h.publish(t)
}

func (h *Holder) publish(t Theme) Snapshot {
	h.mu.Lock()
	prev := h.current.State
	h.current = Snapshot{State: StateResolved, Theme: t, UpdatedAt: time.Now().UTC()}
	snap := h.current
	for _, ch := range h.subs {
		select {
		case ch <- snap:
		default:
			// Keep only the newest snapshot for slow subscribers.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	h.mu.Unlock()

	if prev == StateDefault {
		h.logger.Info("theme resolved", zap.String("primary", t.Palette.Primary.Main))
	} else {
		h.logger.Info("theme replaced", zap.String("primary", t.Palette.Primary.Main))
	}
	return snap
}

// Subscribe returns a channel that receives every snapshot published after
// the call, and a function that stops delivery and closes the channel.
func (h *Holder) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			close(ch)
			h.mu.Unlock()
		})
	}
}

// WatchSettings refreshes the theme whenever topic fires on bus. withSession
// supplies the session the rebuild runs under.
func (h *Holder) WatchSettings(bus EventSubscriber, topic string, withSession func(context.Context) context.Context) (unsubscribe func()) {
	return bus.Subscribe(topic, func(ctx context.Context, _ event.Event) {
		if withSession != nil {
			ctx = withSession(ctx)
		}
		h.Refresh(ctx)
	})
}
