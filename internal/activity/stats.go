package activity

// CategoryCount is the number of activities in one category.
type CategoryCount struct {
	Name  Category `json:"name"`
	Count int      `json:"count"`
}

// CategoryMinutes is the total scheduled minutes in one category.
type CategoryMinutes struct {
	Name    Category `json:"name"`
	Minutes int      `json:"minutes"`
}

// Summary aggregates the whole collection. Both per-category slices always
// contain exactly the six fixed categories in canonical order, even with no
// data, so consumers can render a complete category axis.
type Summary struct {
	ActivitiesPerCategory []CategoryCount   `json:"activities_per_category"`
	TimePerCategory       []CategoryMinutes `json:"time_per_category"`
	TotalActivities       int               `json:"total_activities"`
	CompletedActivities   int               `json:"completed_activities"`
	TotalTimeSpent        int               `json:"total_time_spent"` // minutes
}

// Summarize computes per-category counts and durations plus global totals.
func Summarize(activities []Activity) Summary {
	counts := make(map[Category]int, len(Categories))
	minutes := make(map[Category]int, len(Categories))

	s := Summary{
		ActivitiesPerCategory: make([]CategoryCount, 0, len(Categories)),
		TimePerCategory:       make([]CategoryMinutes, 0, len(Categories)),
	}

	for _, a := range activities {
		d := Duration(a.StartTime, a.EndTime)
		counts[a.Category]++
		minutes[a.Category] += d
		s.TotalActivities++
		s.TotalTimeSpent += d
		if a.IsCompleted {
			s.CompletedActivities++
		}
	}

	for _, c := range Categories {
		s.ActivitiesPerCategory = append(s.ActivitiesPerCategory, CategoryCount{Name: c, Count: counts[c]})
		s.TimePerCategory = append(s.TimePerCategory, CategoryMinutes{Name: c, Minutes: minutes[c]})
	}

	return s
}
