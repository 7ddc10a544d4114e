package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Defaults for scalar configuration values.
const (
	DefaultUpcomingLimit  = 5
	DefaultSuggestModel   = "gemini-2.5-flash-preview-04-17"
	DefaultSuggestBaseURL = "https://generativelanguage.googleapis.com"
	DefaultWebBind        = "127.0.0.1"
	DefaultWebPort        = 8390
)

// Config holds application configuration.
type Config struct {
	// UpcomingLimit is the default item cap for the upcoming view.
	UpcomingLimit int `json:"upcoming_limit"`

	// SuggestAPIKey authenticates against the title-suggestion API.
	// Falls back to the DAYPLAN_API_KEY environment variable when empty.
	SuggestAPIKey string `json:"suggest_api_key,omitempty"`

	// SuggestModel is the text-generation model used for title suggestions.
	SuggestModel string `json:"suggest_model,omitempty"`

	// SuggestBaseURL overrides the suggestion API endpoint (used in tests).
	SuggestBaseURL string `json:"suggest_base_url,omitempty"`

	// WebBind and WebPort are the defaults for the serve command.
	WebBind string `json:"web_bind,omitempty"`
	WebPort int    `json:"web_port,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// DisabledTypes is a list of type names to disable entirely.
	// All tools belonging to disabled types are excluded from registration.
	// Known types: "activity". Unknown type names are logged as warnings.
	DisabledTypes []string `json:"disabled_types,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UpcomingLimit:  DefaultUpcomingLimit,
		SuggestModel:   DefaultSuggestModel,
		SuggestBaseURL: DefaultSuggestBaseURL,
		WebBind:        DefaultWebBind,
		WebPort:        DefaultWebPort,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.dayplan.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)

	if merged.SuggestAPIKey == "" {
		merged.SuggestAPIKey = os.Getenv("DAYPLAN_API_KEY")
	}
	return merged, nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// File doesn't exist, return zero config
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.UpcomingLimit = overlay.UpcomingLimit
	if result.UpcomingLimit == 0 {
		result.UpcomingLimit = base.UpcomingLimit
	}

	result.SuggestAPIKey = overlay.SuggestAPIKey
	if result.SuggestAPIKey == "" {
		result.SuggestAPIKey = base.SuggestAPIKey
	}

	result.SuggestModel = overlay.SuggestModel
	if result.SuggestModel == "" {
		result.SuggestModel = base.SuggestModel
	}

	result.SuggestBaseURL = overlay.SuggestBaseURL
	if result.SuggestBaseURL == "" {
		result.SuggestBaseURL = base.SuggestBaseURL
	}

	result.WebBind = overlay.WebBind
	if result.WebBind == "" {
		result.WebBind = base.WebBind
	}

	result.WebPort = overlay.WebPort
	if result.WebPort == 0 {
		result.WebPort = base.WebPort
	}

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)
	result.DisabledTypes = mergeStringSlice(base.DisabledTypes, overlay.DisabledTypes)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
