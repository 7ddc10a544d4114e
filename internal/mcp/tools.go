package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/radityo/dayplan/internal/ops"
)

// Tool definitions. Descriptions are written for the calling model: they
// spell out formats and defaults so arguments arrive well-formed.

var addToolDef = mcp.NewTool("activity_add",
	mcp.WithDescription("Add a new activity to the schedule. New activities start incomplete."),
	mcp.WithString("name", mcp.Required(),
		mcp.Description("Short activity name")),
	mcp.WithString("description",
		mcp.Description("Free-text description (markdown allowed)")),
	mcp.WithString("date", mcp.Required(),
		mcp.Description("Date in YYYY-MM-DD format")),
	mcp.WithString("startTime", mcp.Required(),
		mcp.Description("Start time in 24h HH:MM format")),
	mcp.WithString("endTime", mcp.Required(),
		mcp.Description("End time in 24h HH:MM format, strictly after startTime")),
	mcp.WithString("category", mcp.Required(),
		mcp.Description("One of: Work, Personal, Fitness, Learning, Social, Other")),
)

var updateToolDef = mcp.NewTool("activity_update",
	mcp.WithDescription("Edit an existing activity. Omitted fields keep their current value. Completion state is changed with activity_toggle, not here."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Activity id")),
	mcp.WithString("name", mcp.Description("New name")),
	mcp.WithString("description", mcp.Description("New description")),
	mcp.WithString("date", mcp.Description("New date in YYYY-MM-DD format")),
	mcp.WithString("startTime", mcp.Description("New start time in HH:MM format")),
	mcp.WithString("endTime", mcp.Description("New end time in HH:MM format")),
	mcp.WithString("category", mcp.Description("New category")),
)

var deleteToolDef = mcp.NewTool("activity_delete",
	mcp.WithDescription("Delete an activity permanently."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Activity id")),
)

var toggleToolDef = mcp.NewTool("activity_toggle",
	mcp.WithDescription("Flip the completion flag of an activity and return its new state."),
	mcp.WithString("id", mcp.Required(),
		mcp.Description("Activity id")),
)

var todayToolDef = mcp.NewTool("activity_today",
	mcp.WithDescription("List the activities scheduled on one date, ordered by start time."),
	mcp.WithString("date",
		mcp.Description("Date in YYYY-MM-DD format; defaults to today")),
)

var upcomingToolDef = mcp.NewTool("activity_upcoming",
	mcp.WithDescription("List the next incomplete activities dated today or later, soonest first."),
	mcp.WithNumber("limit",
		mcp.Description(fmt.Sprintf("Maximum results (default %d, max %d)",
			ops.DefaultUpcomingLimit, ops.MaxUpcomingLimit))),
)

var listToolDef = mcp.NewTool("activity_list",
	mcp.WithDescription("List all activities with optional filters. Filters combine with AND."),
	mcp.WithString("category",
		mcp.Description("Restrict to one category; omit for all")),
	mcp.WithString("completion",
		mcp.Description("One of: all, completed, incomplete (default all)")),
	mcp.WithString("search",
		mcp.Description("Case-insensitive substring matched against name or description")),
	mcp.WithString("direction",
		mcp.Description("Sort by date and start time: asc or desc (default desc)")),
)

var statsToolDef = mcp.NewTool("activity_stats",
	mcp.WithDescription("Aggregate statistics: per-category counts and minutes plus overall totals. Always reports all six categories."),
)

var exportToolDef = mcp.NewTool("activity_export",
	mcp.WithDescription("Export activities as an iCalendar (.ics) file."),
	mcp.WithString("path",
		mcp.Description("Destination file path; defaults to ~/.dayplan/exports/")),
	mcp.WithString("date",
		mcp.Description("Export only activities on this YYYY-MM-DD date; omit for all")),
)

var suggestToolDef = mcp.NewTool("activity_suggest_title",
	mcp.WithDescription("Suggest a concise activity title from a free-text description. Requires a configured suggestion API key."),
	mcp.WithString("description", mcp.Required(),
		mcp.Description("What the activity is about")),
)
