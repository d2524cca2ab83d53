package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Sessions   []jsonSession `json:"sessions"`
}

type jsonSession struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DurationSec int64  `json:"duration_seconds"`
	Duration    string `json:"duration"`
	Tag         string `json:"tag"`
	Phase       string `json:"phase"`
}

func ToJSON(records []session.Record, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(records),
	}

	for _, rec := range records {
		export.Sessions = append(export.Sessions, jsonSession{
			StartTime:   rec.StartTime.Format(time.RFC3339),
			EndTime:     rec.EndTime.Format(time.RFC3339),
			DurationSec: rec.Duration,
			Duration:    formatDuration(rec.Duration),
			Tag:         rec.Tag,
			Phase:       string(rec.Phase),
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
