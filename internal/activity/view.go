package activity

import (
	"sort"
	"strings"
)

// Derived views are pure functions over a snapshot of the collection and are
// recomputed on every call. Freshness comes from recomputation, not from
// tracking dirtiness. All sorts are stable so activities sharing a
// date+start keep store insertion order.

// CompletionFilter selects activities by completion state.
type CompletionFilter string

const (
	CompletionAll        CompletionFilter = "all"
	CompletionCompleted  CompletionFilter = "completed"
	CompletionIncomplete CompletionFilter = "incomplete"
)

// SortDirection orders the filtered full list by combined date+start.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// FilterOptions are the parameters of the filtered full-list view.
// All three filters combine with logical AND.
type FilterOptions struct {
	// Category filters to one category; nil means all.
	Category *Category

	// Completion selects by completion state; empty means all.
	Completion CompletionFilter

	// Search is a case-insensitive substring matched against name OR
	// description; empty matches everything.
	Search string

	// Direction defaults to descending (newest first).
	Direction SortDirection
}

// OnDate returns the activities whose date equals today, ordered ascending
// by start time.
func OnDate(activities []Activity, date string) []Activity {
	out := make([]Activity, 0)
	for _, a := range activities {
		if a.Date == date {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// Upcoming returns up to limit incomplete activities whose date+start is at
// or after the start of today, ordered ascending by date+start. Activities
// dated today qualify regardless of their start time having elapsed; the
// cutoff is start-of-day, not the current clock.
func Upcoming(activities []Activity, today string, limit int) []Activity {
	out := make([]Activity, 0)
	for _, a := range activities {
		if a.IsCompleted {
			continue
		}
		if a.Date >= today {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartKey() < out[j].StartKey()
	})
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Filter returns the subset satisfying all of opts, ordered by combined
// date+start per opts.Direction.
func Filter(activities []Activity, opts FilterOptions) []Activity {
	search := strings.ToLower(opts.Search)

	out := make([]Activity, 0)
	for _, a := range activities {
		if opts.Category != nil && a.Category != *opts.Category {
			continue
		}
		switch opts.Completion {
		case CompletionCompleted:
			if !a.IsCompleted {
				continue
			}
		case CompletionIncomplete:
			if a.IsCompleted {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(a.Name), search) &&
			!strings.Contains(strings.ToLower(a.Description), search) {
			continue
		}
		out = append(out, a)
	}

	asc := opts.Direction == SortAscending
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return out[i].StartKey() < out[j].StartKey()
		}
		return out[i].StartKey() > out[j].StartKey()
	})
	return out
}
