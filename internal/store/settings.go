package store

import (
	"fmt"
	"strconv"
	"time"
)

// Setting keys.
const (
	KeyWorkDuration  = "work_duration"
	KeyBreakDuration = "break_duration"
	KeySelectedTag   = "selected_tag"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// GetDuration reads a duration setting stored as whole seconds.
func (s *Store) GetDuration(key string) (time.Duration, error) {
	raw, err := s.GetSetting(key)
	if err != nil {
		return 0, err
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse setting %q: %w", key, err)
	}
	return time.Duration(secs) * time.Second, nil
}

// SetDuration stores a duration setting as whole seconds.
func (s *Store) SetDuration(key string, d time.Duration) error {
	return s.SetSetting(key, strconv.FormatInt(int64(d/time.Second), 10))
}
