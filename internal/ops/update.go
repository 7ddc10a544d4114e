package ops

import (
	"strings"

	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/store"
)

// UpdateInput contains parameters for the Update operation. Nil fields keep
// their current value; the merged result is re-validated as a whole.
type UpdateInput struct {
	ID          string
	Name        *string
	Description *string
	Date        *string
	StartTime   *string
	EndTime     *string
	Category    *string
}

// UpdateOutput contains the result of the Update operation.
type UpdateOutput struct {
	Activity Item `json:"activity"`
}

// Update applies a partial edit to an existing activity. The id and
// completion state are immutable here; completion changes go through Toggle.
func Update(s *store.Store, input UpdateInput) (*UpdateOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	current, found := s.Get(input.ID)
	if !found {
		return nil, errors.NewNotFound(input.ID)
	}

	merged := DraftInput{
		Name:        current.Name,
		Description: current.Description,
		Date:        current.Date,
		StartTime:   current.StartTime,
		EndTime:     current.EndTime,
		Category:    string(current.Category),
	}
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.Date != nil {
		merged.Date = *input.Date
	}
	if input.StartTime != nil {
		merged.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		merged.EndTime = *input.EndTime
	}
	if input.Category != nil {
		merged.Category = *input.Category
	}

	draft, err := validateDraft(merged)
	if err != nil {
		return nil, err
	}

	updated := activity.Activity{
		ID:          current.ID,
		Name:        draft.Name,
		Description: draft.Description,
		Date:        draft.Date,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Category:    draft.Category,
		IsCompleted: current.IsCompleted,
	}

	found, err = s.Update(updated)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFound(input.ID)
	}

	return &UpdateOutput{Activity: newItem(updated)}, nil
}
