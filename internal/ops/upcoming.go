package ops

import (
	"fmt"

	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/store"
)

// UpcomingInput contains parameters for the Upcoming operation.
type UpcomingInput struct {
	Today string // optional cutoff date, default: current local date
	Limit int    // default: DefaultUpcomingLimit, max: MaxUpcomingLimit
}

// UpcomingOutput contains the result of the Upcoming operation.
type UpcomingOutput struct {
	Activities []Item `json:"activities"`
	Count      int    `json:"count"`
}

// Upcoming returns the next incomplete activities dated today or later,
// soonest first. The cutoff is the start of today, so an activity dated
// today qualifies even when its start time has already passed.
func Upcoming(s *store.Store, input UpcomingInput) (*UpcomingOutput, error) {
	today := input.Today
	if today == "" {
		today = currentDate()
	} else if !activity.ValidDate(today) {
		return nil, errors.NewInvalidRequest("today must be in YYYY-MM-DD format")
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultUpcomingLimit
	}
	if limit < 0 || limit > MaxUpcomingLimit {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("limit must be between 1 and %d", MaxUpcomingLimit))
	}

	items := newItems(activity.Upcoming(s.All(), today, limit))
	return &UpcomingOutput{
		Activities: items,
		Count:      len(items),
	}, nil
}
