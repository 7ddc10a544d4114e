package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/radityo/dayplan/internal/activity"
)

// prodID identifies this exporter in generated calendars.
const prodID = "-//dayplan//activity export//EN"

// Build serializes activities into a single iCalendar document. Records
// whose date or start time fail to parse are skipped rather than aborting
// the whole export; an end time at or before the start falls back to a
// zero-length event, mirroring the zero-duration rule.
func Build(activities []activity.Activity) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(prodID)

	now := time.Now()

	for _, a := range activities {
		start, err := time.ParseInLocation(
			activity.DateLayout+" "+activity.ClockLayout,
			a.Date+" "+a.StartTime,
			time.Local,
		)
		if err != nil {
			continue
		}
		end := start.Add(time.Duration(activity.Duration(a.StartTime, a.EndTime)) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s@dayplan", a.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(a.Name)
		if a.Description != "" {
			event.SetDescription(a.Description)
		}
		event.SetProperty(ics.ComponentPropertyCategories, string(a.Category))
		if a.IsCompleted {
			event.SetProperty(ics.ComponentPropertyStatus, "COMPLETED")
		}
	}

	return cal.Serialize(), nil
}
