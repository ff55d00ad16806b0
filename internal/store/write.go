package store

import (
	"context"
	"fmt"
)

// Set upserts the entry under (namespace, key). The write is a single
// atomic statement: INSERT OR REPLACE deletes any conflicting row and
// inserts a new one, so the entry always receives a fresh seq and moves to
// the front of recency order. Either the whole write commits or it fails
// with no partial state.
func (s *Store) Set(ctx context.Context, namespace, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO entries (namespace, key, value)
		VALUES (?, ?, ?)
	`, namespace, key, value)
	if err != nil {
		return fmt.Errorf("set entry: %w", err)
	}
	return nil
}

// Delete removes the entry under (namespace, key) if present.
// Deleting a missing key is not an error, so deletes are safe to retry.
func (s *Store) Delete(ctx context.Context, namespace, key string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM entries
		WHERE namespace = ? AND key = ?
	`, namespace, key)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
