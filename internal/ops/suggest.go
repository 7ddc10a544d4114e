package ops

import (
	"context"
	"strings"

	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/suggest"
)

// SuggestInput contains parameters for the Suggest operation.
type SuggestInput struct {
	Description string
}

// SuggestOutput contains the result of the Suggest operation.
type SuggestOutput struct {
	Title string `json:"title"`
}

// Suggest asks the title-suggestion collaborator for a concise title.
// Failures surface as errors and never touch the activity store.
func Suggest(ctx context.Context, sg suggest.Suggester, input SuggestInput) (*SuggestOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, errors.NewInvalidRequest("description is required")
	}

	title, err := sg.SuggestTitle(ctx, input.Description)
	if err != nil {
		return nil, err
	}

	return &SuggestOutput{Title: title}, nil
}
