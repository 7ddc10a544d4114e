package ops

import (
	"strings"

	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/store"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete removes an activity from the collection.
func Delete(s *store.Store, input DeleteInput) (*DeleteOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	found, err := s.Remove(input.ID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NewNotFound(input.ID)
	}

	return &DeleteOutput{Deleted: true, ID: input.ID}, nil
}
