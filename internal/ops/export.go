package ops

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/radityo/dayplan/internal/activity"
	"github.com/radityo/dayplan/internal/errors"
	"github.com/radityo/dayplan/internal/ical"
	"github.com/radityo/dayplan/internal/store"
)

// ExportInput contains parameters for the Export operation.
type ExportInput struct {
	Path string // optional, default: ~/.dayplan/exports/<scope>-<timestamp>.ics
	Date string // optional, export only activities on this date
}

// ExportOutput contains the result of the Export operation.
type ExportOutput struct {
	Path       string `json:"path"`
	Count      int    `json:"count"`
	ExportedAt int64  `json:"exported_at"`
}

// Export writes the collection, or one day of it, as an iCalendar file.
// The file is written to a temp path first and renamed into place so a
// failure cannot truncate an existing export.
func Export(s *store.Store, input ExportInput) (*ExportOutput, error) {
	now := time.Now()

	activities := s.All()
	if input.Date != "" {
		if !activity.ValidDate(input.Date) {
			return nil, errors.NewInvalidRequest("date must be in YYYY-MM-DD format")
		}
		activities = activity.OnDate(activities, input.Date)
	}

	exportPath := input.Path
	if exportPath == "" {
		var err error
		exportPath, err = defaultExportPath(input.Date, now)
		if err != nil {
			return nil, err
		}
	}

	doc, err := ical.Build(activities)
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	dir := filepath.Dir(exportPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := exportPath + "." + hex.EncodeToString(randBytes) + ".tmp"

	if err := os.WriteFile(tempPath, []byte(doc), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}
	if err := os.Rename(tempPath, exportPath); err != nil {
		os.Remove(tempPath)
		return nil, errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	return &ExportOutput{
		Path:       exportPath,
		Count:      len(activities),
		ExportedAt: now.Unix(),
	}, nil
}

// defaultExportPath generates the default export path.
// Format: ~/.dayplan/exports/<date or all>-<timestamp>.ics
func defaultExportPath(date string, now time.Time) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewInternal(fmt.Errorf("failed to get home directory: %w", err))
	}

	scope := "all"
	if date != "" {
		scope = date
	}
	filename := fmt.Sprintf("%s-%s.ics", scope, now.Format("2006-01-02T150405"))
	return filepath.Join(homeDir, ".dayplan", "exports", filename), nil
}
