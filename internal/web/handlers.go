package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/config"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/ops"
	"github.com/radityo/dayplan/internal/store"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	store    *store.Store
	cfg      *config.Config
	renderer *Renderer
}

// HandleToday handles GET /today — today's schedule plus the upcoming list.
func (h *Handlers) HandleToday(w http.ResponseWriter, r *http.Request) {
	today, err := ops.Today(h.store, ops.TodayInput{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	upcoming, err := ops.Upcoming(h.store, ops.UpcomingInput{
		Limit: parseIntParam(r, "limit", h.cfg.UpcomingLimit),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	total := 0
	for _, item := range today.Activities {
		total += item.DurationMinutes
	}

	h.renderer.renderPage(w, r, "today", TodayPageData{
		PageData: PageData{
			Title:   "Today",
			Version: h.renderer.version,
			Nav:     "today",
		},
		Date:         today.Date,
		Items:        today.Activities,
		TotalMinutes: total,
		TotalTime:    activity.FormatMinutes(total),
		Upcoming:     upcoming.Activities,
	})
}

// HandleActivities handles GET /activities — the filtered full list.
func (h *Handlers) HandleActivities(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	completion := r.URL.Query().Get("completion")
	search := r.URL.Query().Get("search")
	direction := r.URL.Query().Get("direction")

	result, err := ops.List(h.store, ops.ListInput{
		Category:   category,
		Completion: completion,
		Search:     search,
		Direction:  direction,
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "activities", ActivitiesPageData{
		PageData: PageData{
			Title:   "Activities",
			Version: h.renderer.version,
			Nav:     "activities",
		},
		Items:      result.Activities,
		Count:      result.Count,
		Categories: activity.Categories,
		Category:   category,
		Completion: completion,
		Search:     search,
		Direction:  direction,
	})
}

// HandleAnalytics handles GET /analytics — aggregate statistics.
func (h *Handlers) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	stats, err := ops.Stats(h.store)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "analytics", AnalyticsPageData{
		PageData: PageData{
			Title:   "Analytics",
			Version: h.renderer.version,
			Nav:     "analytics",
		},
		Stats: stats,
	})
}

// HandleToggle handles POST /activities/{id}/toggle — flip completion.
func (h *Handlers) HandleToggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("activity ID is required"))
		return
	}

	result, err := ops.Toggle(h.store, ops.ToggleInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: refresh the page the toggle came from
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, result)
		return
	}

	// Default: redirect back
	http.Redirect(w, r, redirectTarget(r), http.StatusFound)
}

// HandleDelete handles DELETE /activities/{id} — remove an activity.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("activity ID is required"))
		return
	}

	result, err := ops.Delete(h.store, ops.DeleteInput{ID: id})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	// HTMX request: redirect via HX-Redirect header
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/activities")
		w.WriteHeader(http.StatusOK)
		return
	}

	// JSON request
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		renderJSON(w, http.StatusOK, map[string]any{
			"deleted": result.Deleted,
			"id":      result.ID,
		})
		return
	}

	// Default: redirect
	http.Redirect(w, r, "/activities", http.StatusFound)
}

// redirectTarget picks a safe same-site redirect target from the "from"
// query parameter, falling back to the activity list.
func redirectTarget(r *http.Request) string {
	from := r.URL.Query().Get("from")
	if strings.HasPrefix(from, "/") && !strings.HasPrefix(from, "//") {
		return from
	}
	return "/activities"
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
