package store

import (
	"fmt"
	"strings"
)

// AddTag inserts a tag name. Duplicate names are rejected by the
// UNIQUE constraint and reported as ErrTagExists.
func (s *Store) AddTag(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyTag
	}
	_, err := s.db.Exec(`INSERT INTO tags (name) VALUES (?)`, name)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrTagExists
		}
		return fmt.Errorf("add tag: %w", err)
	}
	return nil
}

// DeleteTag removes a tag by name. Unknown names are ErrTagNotFound.
func (s *Store) DeleteTag(name string) error {
	res, err := s.db.Exec(`DELETE FROM tags WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTagNotFound
	}
	return nil
}

// ListTags returns tag names in insertion order.
func (s *Store) ListTags() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
