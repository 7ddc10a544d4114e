package ops

import (
	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/store"
)

// StatsOutput contains the result of the Stats operation.
type StatsOutput struct {
	activity.Summary
	TotalTimeFormatted string `json:"total_time_formatted"`
}

// Stats aggregates the whole collection into per-category counts and minute
// totals plus global counters.
func Stats(s *store.Store) (*StatsOutput, error) {
	summary := activity.Summarize(s.All())
	return &StatsOutput{
		Summary:            summary,
		TotalTimeFormatted: activity.FormatMinutes(summary.TotalTimeSpent),
	}, nil
}
