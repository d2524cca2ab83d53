package store

import (
	"fmt"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// SaveSession appends a completed session. Timestamps are stored as
// RFC 3339 so the original local offset survives round trips.
func (s *Store) SaveSession(rec session.Record) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions (start_time, end_time, duration, tag, phase) VALUES (?, ?, ?, ?, ?)`,
		rec.StartTime.Format(time.RFC3339),
		rec.EndTime.Format(time.RFC3339),
		rec.Duration,
		rec.Tag,
		string(rec.Phase),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// ListSessions returns every stored session ordered by start time.
func (s *Store) ListSessions() ([]session.Record, error) {
	rows, err := s.db.Query(
		`SELECT start_time, end_time, duration, tag, phase FROM sessions ORDER BY start_time, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var records []session.Record
	for rows.Next() {
		var (
			rec        session.Record
			start, end string
			phase      string
		)
		if err := rows.Scan(&start, &end, &rec.Duration, &rec.Tag, &phase); err != nil {
			return nil, err
		}
		rec.StartTime, err = time.Parse(time.RFC3339, start)
		if err != nil {
			return nil, fmt.Errorf("parse start_time %q: %w", start, err)
		}
		rec.EndTime, err = time.Parse(time.RFC3339, end)
		if err != nil {
			return nil, fmt.Errorf("parse end_time %q: %w", end, err)
		}
		rec.Phase = session.Phase(phase)
		records = append(records, rec)
	}
	return records, rows.Err()
}
