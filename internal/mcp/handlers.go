package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/radityo/dayplan/internal/config"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/ops"
	"github.com/radityo/dayplan/internal/store"
	"github.com/radityo/dayplan/internal/suggest"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	store     *store.Store
	cfg       *config.Config
	suggester suggest.Suggester
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(s *store.Store, cfg *config.Config, sg suggest.Suggester) *Handlers {
	return &Handlers{store: s, cfg: cfg, suggester: sg}
}

// Request types for each tool

// AddRequest represents the arguments for activity_add.
type AddRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Category    string `json:"category"`
}

// UpdateRequest represents the arguments for activity_update.
type UpdateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// DeleteRequest represents the arguments for activity_delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// ToggleRequest represents the arguments for activity_toggle.
type ToggleRequest struct {
	ID string `json:"id"`
}

// TodayRequest represents the arguments for activity_today.
type TodayRequest struct {
	Date string `json:"date,omitempty"`
}

// UpcomingRequest represents the arguments for activity_upcoming.
type UpcomingRequest struct {
	Limit int `json:"limit,omitempty"`
}

// ListRequest represents the arguments for activity_list.
type ListRequest struct {
	Category   string `json:"category,omitempty"`
	Completion string `json:"completion,omitempty"`
	Search     string `json:"search,omitempty"`
	Direction  string `json:"direction,omitempty"`
}

// ExportRequest represents the arguments for activity_export.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
	Date string `json:"date,omitempty"`
}

// SuggestRequest represents the arguments for activity_suggest_title.
type SuggestRequest struct {
	Description string `json:"description"`
}

// Handler implementations

// HandleAdd handles the activity_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Add(h.store, ops.AddInput{
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    input.Category,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUpdate handles the activity_update tool call.
func (h *Handlers) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Update(h.store, ops.UpdateInput{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Category:    input.Category,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the activity_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.store, ops.DeleteInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleToggle handles the activity_toggle tool call.
func (h *Handlers) HandleToggle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ToggleRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Toggle(h.store, ops.ToggleInput{ID: input.ID})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleToday handles the activity_today tool call.
func (h *Handlers) HandleToday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TodayRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Today(h.store, ops.TodayInput{Date: input.Date})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUpcoming handles the activity_upcoming tool call.
func (h *Handlers) HandleUpcoming(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpcomingRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	limit := input.Limit
	if limit == 0 {
		limit = h.cfg.UpcomingLimit
	}

	result, err := ops.Upcoming(h.store, ops.UpcomingInput{Limit: limit})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the activity_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.store, ops.ListInput{
		Category:   input.Category,
		Completion: input.Completion,
		Search:     input.Search,
		Direction:  input.Direction,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleStats handles the activity_stats tool call.
func (h *Handlers) HandleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Stats(h.store)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the activity_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.store, ops.ExportInput{
		Path: input.Path,
		Date: input.Date,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSuggestTitle handles the activity_suggest_title tool call.
func (h *Handlers) HandleSuggestTitle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SuggestRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Suggest(ctx, h.suggester, ops.SuggestInput{Description: input.Description})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// errorResult creates an MCP error result from any error.
// Structured PlanError details are preserved so callers can branch on the
// code; anything else collapses to a generic internal error.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if planErr, ok := err.(*errors.PlanError); ok {
		errorObj := map[string]any{
			"code":    planErr.Code,
			"message": planErr.Message,
			"status":  planErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if planErr.Code != errors.ErrInternal && planErr.Details != nil {
			errorObj["details"] = planErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
