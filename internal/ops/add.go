package ops

import (
	"github.com/radityo/dayplan/internal/store"
)

// AddInput contains parameters for the Add operation.
type AddInput struct {
	Name        string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Category    string
}

// AddOutput contains the result of the Add operation.
type AddOutput struct {
	Activity Item `json:"activity"`
}

// Add validates the draft and appends a new activity to the collection. The
// store assigns the id and starts the activity incomplete.
func Add(s *store.Store, input AddInput) (*AddOutput, error) {
	draft, err := validateDraft(DraftInput(input))
	if err != nil {
		return nil, err
	}

	a, err := s.Add(draft)
	if err != nil {
		return nil, err
	}

	return &AddOutput{Activity: newItem(a)}, nil
}
