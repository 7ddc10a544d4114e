package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/radityo/dayplan/internal/config"
	"github.com/radityo/dayplan/internal/errors"
)

// Suggester proposes a short activity title from a free-text description.
// Failures surface as explicit errors and never touch the activity store.
type Suggester interface {
	SuggestTitle(ctx context.Context, description string) (string, error)
}

// Client calls a Gemini-style generateContent endpoint over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a suggestion client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: strings.TrimRight(cfg.SuggestBaseURL, "/"),
		apiKey:  cfg.SuggestAPIKey,
		model:   cfg.SuggestModel,
	}
}

// Request/response shapes for the generateContent wire format.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
}

// SuggestTitle asks the model for a concise title (ideally 3-6 words) for
// the given description. The returned string is trimmed and stripped of
// surrounding quotes.
func (c *Client) SuggestTitle(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", errors.NewInvalidRequest("description must not be empty")
	}
	if c.apiKey == "" {
		return "", errors.NewSuggestFailed("no suggestion API key configured")
	}

	prompt := fmt.Sprintf(`Based on the following activity description, suggest a concise, informative title (ideally 3-6 words, at most 10). Return only the title, with no extra text or explanation.

Description: %q

Suggested title:`, description)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			// Lower temperature for more focused, deterministic titles.
			Temperature:     0.5,
			TopK:            10,
			MaxOutputTokens: 256,
		},
	})
	if err != nil {
		return "", errors.NewInternal(err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.NewInternal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewSuggestFailed(fmt.Sprintf("suggestion request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.NewSuggestFailed(fmt.Sprintf("suggestion API returned %s", resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewSuggestFailed(fmt.Sprintf("reading suggestion response: %v", err))
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", errors.NewSuggestFailed(fmt.Sprintf("decoding suggestion response: %v", err))
	}

	if len(out.Candidates) == 0 {
		return "", errors.NewSuggestFailed("suggestion API returned no candidates")
	}

	cand := out.Candidates[0]
	title := ""
	if len(cand.Content.Parts) > 0 {
		title = strings.TrimSpace(cand.Content.Parts[0].Text)
	}
	if title == "" {
		if cand.FinishReason != "" && cand.FinishReason != "STOP" {
			return "", errors.NewSuggestFailed(fmt.Sprintf("model stopped early: %s", cand.FinishReason))
		}
		return "", errors.NewSuggestFailed("suggestion API returned no text content")
	}

	return trimQuotes(title), nil
}

// trimQuotes removes one layer of surrounding single or double quotes that
// models sometimes add around titles.
func trimQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
