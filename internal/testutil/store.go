// Package testutil holds shared helpers for package tests.
package testutil

import (
	"testing"

	"github.com/HerbHall/salesdesk/internal/store"
)

// NewStore returns an in-memory SQLiteStore that is closed when the test ends.
func NewStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.New(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
