package ops

import (
	"testing"

	"github.com/radityo/dayplan/internal/errors"
)

func TestUpdate_Partial(t *testing.T) {
	s := setupStore(t)
	added := mustAdd(t, s, validAdd())

	out, err := Update(s, UpdateInput{
		ID:   added.ID,
		Name: stringPtr("Evening Run"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	a := out.Activity
	if a.Name != "Evening Run" {
		t.Errorf("Name = %q, want %q", a.Name, "Evening Run")
	}
	// Untouched fields survive
	if a.Date != added.Date || a.StartTime != added.StartTime || a.Category != added.Category {
		t.Errorf("unchanged fields were modified: %+v", a)
	}
	if a.ID != added.ID {
		t.Errorf("ID changed from %q to %q", added.ID, a.ID)
	}
}

func TestUpdate_PreservesCompletion(t *testing.T) {
	s := setupStore(t)
	added := mustAdd(t, s, validAdd())

	if _, err := Toggle(s, ToggleInput{ID: added.ID}); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	out, err := Update(s, UpdateInput{ID: added.ID, Description: stringPtr("updated")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !out.Activity.IsCompleted {
		t.Error("Update should not reset completion state")
	}
}

func TestUpdate_RevalidatesMergedResult(t *testing.T) {
	s := setupStore(t)
	added := mustAdd(t, s, validAdd()) // 07:00-08:00

	// Moving the end before the existing start must fail even though the
	// end time is well-formed on its own.
	_, err := Update(s, UpdateInput{ID: added.ID, EndTime: stringPtr("06:00")})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}

	// The stored record is untouched
	current, found := s.Get(added.ID)
	if !found || current.EndTime != "08:00" {
		t.Errorf("stored record changed after rejected update: %+v", current)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	s := setupStore(t)

	_, err := Update(s, UpdateInput{ID: "01J0000000000000000000000", Name: stringPtr("x")})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestUpdate_MissingID(t *testing.T) {
	s := setupStore(t)

	_, err := Update(s, UpdateInput{Name: stringPtr("x")})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want INVALID_REQUEST", err)
	}
}
