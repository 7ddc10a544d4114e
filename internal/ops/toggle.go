package ops

import (
	"strings"

	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/store"
)

// ToggleInput contains parameters for the Toggle operation.
type ToggleInput struct {
	ID string
}

// ToggleOutput contains the result of the Toggle operation.
type ToggleOutput struct {
	Activity Item `json:"activity"`
}

// Toggle flips the completion flag of an activity.
func Toggle(s *store.Store, input ToggleInput) (*ToggleOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	a, found, err := s.ToggleComplete(input.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFound(input.ID)
	}

	return &ToggleOutput{Activity: newItem(a)}, nil
}
