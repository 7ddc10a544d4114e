package ops

import (
	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/store"
)

// TodayInput contains parameters for the Today operation.
type TodayInput struct {
	Date string // optional, default: current local date
}

// TodayOutput contains the result of the Today operation.
type TodayOutput struct {
	Date       string `json:"date"`
	Activities []Item `json:"activities"`
	Count      int    `json:"count"`
}

// Today returns the activities scheduled on the given date (default today),
// ordered by start time.
func Today(s *store.Store, input TodayInput) (*TodayOutput, error) {
	date := input.Date
	if date == "" {
		date = currentDate()
	} else if !activity.ValidDate(date) {
		return nil, errors.NewInvalidRequest("date must be in YYYY-MM-DD format")
	}

	items := newItems(activity.OnDate(s.All(), date))
	return &TodayOutput{
		Date:       date,
		Activities: items,
		Count:      len(items),
	}, nil
}
