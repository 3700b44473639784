package service_test

import (
	"path/filepath"
	"testing"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

func newTestStore(t *testing.T) *store.SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.db")
	s, err := store.NewSQLite(store.Config{Path: path})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.CreateSchema(); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return s
}
