package activity

import (
	"fmt"
	"time"
)

// Layouts for the stored date and time-of-day strings.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Category is one label from the fixed six-value enumeration.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryFitness  Category = "Fitness"
	CategoryLearning Category = "Learning"
	CategorySocial   Category = "Social"
	CategoryOther    Category = "Other"
)

// Categories is the canonical ordered listing of all categories.
// Aggregations iterate this slice so output order is deterministic and
// never derived from observed data.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryFitness,
	CategoryLearning,
	CategorySocial,
	CategoryOther,
}

// ParseCategory validates a category string against the enumeration.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Activity represents a single scheduled, time-boxed task record.
type Activity struct {
	// ID is a ULID that uniquely identifies this activity
	ID string `json:"id"`

	// Name is the display title (non-empty, enforced at the ops boundary)
	Name string `json:"name"`

	// Description is free text; the web UI renders it as markdown
	Description string `json:"description"`

	// Date is the calendar date as YYYY-MM-DD
	Date string `json:"date"`

	// StartTime and EndTime are times of day as HH:MM (24-hour)
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	// Category is one value from the fixed enumeration
	Category Category `json:"category"`

	// IsCompleted defaults to false on creation
	IsCompleted bool `json:"isCompleted"`
}

// StartKey returns the combined date+start sort key for this activity.
// Lexicographic comparison of "YYYY-MM-DDTHH:MM" is equivalent to
// chronological order.
func (a Activity) StartKey() string {
	return a.Date + "T" + a.StartTime
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
// time.Parse accepts unpadded components, so round-trip to enforce the
// exact stored form.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// ValidClock reports whether s is a well-formed HH:MM time of day.
func ValidClock(s string) bool {
	t, err := time.Parse(ClockLayout, s)
	return err == nil && t.Format(ClockLayout) == s
}
