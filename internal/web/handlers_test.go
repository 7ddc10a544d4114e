package web

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/radityo/dayplan/internal/config"
	"github.com/radityo/dayplan/internal/db"
	"github.com/radityo/dayplan/internal/ops"
	"github.com/radityo/dayplan/internal/store"
)

func setupTest(t *testing.T) *Handlers {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	s, err := store.Open(database)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}

	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		t.Fatalf("template sub-FS: %v", err)
	}
	renderer := NewRenderer(templateSub, "test")

	return &Handlers{
		store:    s,
		cfg:      config.DefaultConfig(),
		renderer: renderer,
	}
}

// seedActivity adds an activity and returns its ID.
func seedActivity(t *testing.T, h *Handlers, name, date string) string {
	t.Helper()
	out, err := ops.Add(h.store, ops.AddInput{
		Name:        name,
		Description: "a **bold** plan",
		Date:        date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Category:    "Work",
	})
	if err != nil {
		t.Fatalf("seed activity %q: %v", name, err)
	}
	return out.Activity.ID
}

// --- HandleToday ---

func TestHandleToday(t *testing.T) {
	h := setupTest(t)
	seedActivity(t, h, "Standup", "2024-06-01")
	seedActivity(t, h, "Elsewhere", "2024-06-02")

	req := httptest.NewRequest("GET", "/today?date=2024-06-01", nil)
	rec := httptest.NewRecorder()
	h.HandleToday(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Standup") {
		t.Error("expected activity 'Standup' in response")
	}
	if !strings.Contains(body, "2024-06-01") {
		t.Error("expected the date in the response")
	}
}

func TestHandleToday_RendersMarkdownDescription(t *testing.T) {
	h := setupTest(t)
	seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("GET", "/today?date=2024-06-01", nil)
	rec := httptest.NewRecorder()
	h.HandleToday(rec, req)

	if !strings.Contains(rec.Body.String(), "<strong>bold</strong>") {
		t.Error("expected markdown description to be rendered as HTML")
	}
}

func TestHandleToday_InvalidDate(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/today?date=notadate", nil)
	rec := httptest.NewRecorder()
	h.HandleToday(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleToday_HtmxReturnsContentOnly(t *testing.T) {
	h := setupTest(t)
	seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("GET", "/today?date=2024-06-01", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleToday(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("htmx response should not include the full layout")
	}
	if !strings.Contains(body, "Standup") {
		t.Error("htmx response should include the content block")
	}
}

// --- HandleActivities ---

func TestHandleActivities_Filters(t *testing.T) {
	h := setupTest(t)
	seedActivity(t, h, "Standup", "2024-06-01")

	if _, err := ops.Add(h.store, ops.AddInput{
		Name:      "Run",
		Date:      "2024-06-01",
		StartTime: "07:00",
		EndTime:   "08:00",
		Category:  "Fitness",
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest("GET", "/activities?category=Fitness", nil)
	rec := httptest.NewRecorder()
	h.HandleActivities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Run") {
		t.Error("expected 'Run' in filtered results")
	}
	if strings.Contains(body, "Standup") {
		t.Error("did not expect 'Standup' in Fitness-filtered results")
	}
}

func TestHandleActivities_InvalidFilter(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/activities?completion=finished", nil)
	rec := httptest.NewRecorder()
	h.HandleActivities(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleActivities_Empty(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/activities", nil)
	rec := httptest.NewRecorder()
	h.HandleActivities(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No activities") {
		t.Error("expected empty state message")
	}
}

// --- HandleAnalytics ---

func TestHandleAnalytics(t *testing.T) {
	h := setupTest(t)
	seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("GET", "/analytics", nil)
	rec := httptest.NewRecorder()
	h.HandleAnalytics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	// All six categories render even with one activity
	for _, category := range []string{"Work", "Personal", "Fitness", "Learning", "Social", "Other"} {
		if !strings.Contains(body, category) {
			t.Errorf("expected category %q on the analytics page", category)
		}
	}
}

// --- HandleToggle ---

func TestHandleToggle_Redirect(t *testing.T) {
	h := setupTest(t)
	id := seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("POST", "/activities/"+id+"/toggle?from=/today", nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/today" {
		t.Errorf("Location = %q, want /today", got)
	}

	toggled, _ := h.store.Get(id)
	if !toggled.IsCompleted {
		t.Error("activity should be completed after toggle")
	}
}

func TestHandleToggle_UnsafeRedirectFallsBack(t *testing.T) {
	h := setupTest(t)
	id := seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("POST", "/activities/"+id+"/toggle?from=//evil.example", nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	if got := rec.Header().Get("Location"); got != "/activities" {
		t.Errorf("Location = %q, want fallback /activities", got)
	}
}

func TestHandleToggle_JSONRequest(t *testing.T) {
	h := setupTest(t)
	id := seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("POST", "/activities/"+id+"/toggle", nil)
	req.SetPathValue("id", id)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Activity struct {
			IsCompleted bool `json:"isCompleted"`
		} `json:"activity"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if !payload.Activity.IsCompleted {
		t.Error("JSON response should reflect the toggled state")
	}
}

func TestHandleToggle_NotFound(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("POST", "/activities/unknown/toggle", nil)
	req.SetPathValue("id", "unknown")
	rec := httptest.NewRecorder()
	h.HandleToggle(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// --- HandleDelete ---

func TestHandleDelete_HtmxRequest(t *testing.T) {
	h := setupTest(t)
	id := seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("DELETE", "/activities/"+id, nil)
	req.SetPathValue("id", id)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/activities" {
		t.Errorf("HX-Redirect = %q, want /activities", got)
	}
	if h.store.Len() != 0 {
		t.Error("activity should be removed")
	}
}

func TestHandleDelete_JSONRequest(t *testing.T) {
	h := setupTest(t)
	id := seedActivity(t, h, "Standup", "2024-06-01")

	req := httptest.NewRequest("DELETE", "/activities/"+id, nil)
	req.SetPathValue("id", id)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if payload["deleted"] != true {
		t.Errorf("deleted = %v, want true", payload["deleted"])
	}
}

func TestHandleDelete_NotFound_JSON(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("DELETE", "/activities/unknown", nil)
	req.SetPathValue("id", "unknown")
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	errorObj, ok := payload["error"].(map[string]any)
	if !ok || errorObj["code"] != "NOT_FOUND" {
		t.Errorf("error = %v, want NOT_FOUND", payload["error"])
	}
}

// --- error rendering ---

func TestErrorRendering_HtmxFragment(t *testing.T) {
	h := setupTest(t)

	req := httptest.NewRequest("GET", "/today?date=bad", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleToday(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error-message") {
		t.Error("expected an error fragment for htmx requests")
	}
}

func TestSecurityHeaders(t *testing.T) {
	h := setupTest(t)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /today", h.HandleToday)
	wrapped := securityHeaders(mux)

	req := httptest.NewRequest("GET", "/today", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
	if rec.Header().Get("Content-Security-Policy") == "" {
		t.Error("expected a Content-Security-Policy header")
	}
}

func TestParseIntParam(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=7&bad=x", nil)

	if got := parseIntParam(req, "limit", 5); got != 7 {
		t.Errorf("limit = %d, want 7", got)
	}
	if got := parseIntParam(req, "bad", 5); got != 5 {
		t.Errorf("bad = %d, want fallback 5", got)
	}
	if got := parseIntParam(req, "missing", 5); got != 5 {
		t.Errorf("missing = %d, want fallback 5", got)
	}
}
