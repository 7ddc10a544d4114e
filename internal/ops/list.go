package ops

import (
	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/store"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Category   string // optional, one of the six categories; empty means all
	Completion string // all | completed | incomplete, default: all
	Search     string // case-insensitive substring over name or description
	Direction  string // asc | desc, default: desc
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Activities []Item `json:"activities"`
	Count      int    `json:"count"`
}

// List returns the filtered, sorted full collection. All filters combine
// with logical AND.
func List(s *store.Store, input ListInput) (*ListOutput, error) {
	opts := activity.FilterOptions{Search: input.Search}

	if input.Category != "" {
		category, err := activity.ParseCategory(input.Category)
		if err != nil {
			return nil, errors.NewInvalidRequest(err.Error())
		}
		opts.Category = &category
	}

	switch input.Completion {
	case "", string(activity.CompletionAll):
		opts.Completion = activity.CompletionAll
	case string(activity.CompletionCompleted):
		opts.Completion = activity.CompletionCompleted
	case string(activity.CompletionIncomplete):
		opts.Completion = activity.CompletionIncomplete
	default:
		return nil, errors.NewInvalidRequest("completion must be one of: all, completed, incomplete")
	}

	switch input.Direction {
	case "", string(activity.SortDescending):
		opts.Direction = activity.SortDescending
	case string(activity.SortAscending):
		opts.Direction = activity.SortAscending
	default:
		return nil, errors.NewInvalidRequest("direction must be one of: asc, desc")
	}

	items := newItems(activity.Filter(s.All(), opts))
	return &ListOutput{
		Activities: items,
		Count:      len(items),
	}, nil
}
