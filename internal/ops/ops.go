package ops

import (
	"strings"
	"time"

	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/store"
)

// View limits
const (
	DefaultUpcomingLimit = 5
	MaxUpcomingLimit     = 50
)

// Item is an activity as the view operations present it, with the scheduled
// duration precomputed in both raw and human-readable form.
type Item struct {
	activity.Activity
	DurationMinutes int    `json:"durationMinutes"`
	Duration        string `json:"duration"`
}

func newItem(a activity.Activity) Item {
	m := activity.Duration(a.StartTime, a.EndTime)
	return Item{
		Activity:        a,
		DurationMinutes: m,
		Duration:        activity.FormatMinutes(m),
	}
}

func newItems(activities []activity.Activity) []Item {
	out := make([]Item, 0, len(activities))
	for _, a := range activities {
		out = append(out, newItem(a))
	}
	return out
}

// DraftInput carries the caller-supplied fields of an activity.
type DraftInput struct {
	Name        string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Category    string
}

// validateDraft checks a full draft at the operation boundary. The store
// trusts its caller, so every path into it goes through here.
// Rules:
// - name must be non-empty after trimming
// - date must be YYYY-MM-DD, startTime/endTime must be HH:MM
// - endTime must be strictly after startTime
// - category must be one of the six fixed categories
func validateDraft(input DraftInput) (store.Draft, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return store.Draft{}, errors.NewInvalidRequest("name is required")
	}
	if !activity.ValidDate(input.Date) {
		return store.Draft{}, errors.NewInvalidRequest("date must be in YYYY-MM-DD format")
	}
	if !activity.ValidClock(input.StartTime) {
		return store.Draft{}, errors.NewInvalidRequest("startTime must be in HH:MM format")
	}
	if !activity.ValidClock(input.EndTime) {
		return store.Draft{}, errors.NewInvalidRequest("endTime must be in HH:MM format")
	}
	if input.EndTime <= input.StartTime {
		return store.Draft{}, errors.NewInvalidRequest("endTime must be after startTime")
	}
	category, err := activity.ParseCategory(input.Category)
	if err != nil {
		return store.Draft{}, errors.NewInvalidRequest(err.Error())
	}

	return store.Draft{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    category,
	}, nil
}

// currentDate returns today's date in the local clock as YYYY-MM-DD.
func currentDate() string {
	return time.Now().Format(activity.DateLayout)
}
