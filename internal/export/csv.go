package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

func ToCSV(records []session.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Start", "End", "Duration (s)", "Duration", "Tag", "Phase"}); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			rec.StartTime.Format(time.RFC3339),
			rec.EndTime.Format(time.RFC3339),
			fmt.Sprintf("%d", rec.Duration),
			formatDuration(rec.Duration),
			rec.Tag,
			string(rec.Phase),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
