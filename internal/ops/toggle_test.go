package ops

import (
	"testing"

	"github.com/radityo/dayplan/internal/errors"
)

func TestToggle_FlipsBothWays(t *testing.T) {
	s := setupStore(t)
	added := mustAdd(t, s, validAdd())

	out, err := Toggle(s, ToggleInput{ID: added.ID})
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !out.Activity.IsCompleted {
		t.Error("first toggle should complete the activity")
	}

	out, err = Toggle(s, ToggleInput{ID: added.ID})
	if err != nil {
		t.Fatalf("second Toggle failed: %v", err)
	}
	if out.Activity.IsCompleted {
		t.Error("second toggle should reopen the activity")
	}
}

func TestToggle_UnknownID(t *testing.T) {
	s := setupStore(t)

	_, err := Toggle(s, ToggleInput{ID: "01J0000000000000000000000"})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}
