package ws

import (
	"time"

	"github.com/HerbHall/salesdesk/internal/theme"
)

// MessageType discriminates WebSocket messages.
type MessageType string

const (
	MessageThemeSnapshot MessageType = "theme.snapshot"
)

// Message is the envelope for all WebSocket messages.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      any         `json:"data"`
}

// ThemeSnapshotData is the payload for theme.snapshot messages.
type ThemeSnapshotData struct {
	State theme.State `json:"state"`
	Theme theme.Theme `json:"theme"`
}

func snapshotMessage(s theme.Snapshot) Message {
	return Message{
		Type:      MessageThemeSnapshot,
		Timestamp: s.UpdatedAt,
		Data:      ThemeSnapshotData{State: s.State, Theme: s.Theme},
	}
}
