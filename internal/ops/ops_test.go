package ops

import (
	"testing"

	"github.com/radityo/dayplan/internal/db"
	"github.com/radityo/dayplan/internal/store"
)

// setupStore creates a store backed by a throwaway database.
func setupStore(t *testing.T) *store.Store {
	t.Helper()

	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	s, err := store.Open(database)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	return s
}

// mustAdd adds an activity or fails the test.
func mustAdd(t *testing.T, s *store.Store, input AddInput) Item {
	t.Helper()

	out, err := Add(s, input)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return out.Activity
}

func stringPtr(s string) *string {
	return &s
}

func validAdd() AddInput {
	return AddInput{
		Name:      "Morning Run",
		Date:      "2024-06-01",
		StartTime: "07:00",
		EndTime:   "08:00",
		Category:  "Fitness",
	}
}
