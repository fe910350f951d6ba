package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dgallion1/jsxtext/internal/catalog"
)

// Store persists catalog entries per namespace.
type Store struct {
	db *sql.DB
}

// NamespaceInfo summarizes one stored namespace.
type NamespaceInfo struct {
	Name      string    `json:"namespace"`
	Entries   int       `json:"entries"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertEntries writes entries into namespace in one transaction,
// overwriting existing keys. It returns the number of entries written.
func (s *Store) UpsertEntries(ctx context.Context, namespace string, entries []catalog.Entry) (int, error) {
	if namespace == "" {
		return 0, fmt.Errorf("namespace is required")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (namespace, key, value, source, file, line, placeholders, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET
			value = excluded.value,
			source = excluded.source,
			file = excluded.file,
			line = excluded.line,
			placeholders = excluded.placeholders,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, namespace, e.Key, e.Value, e.Source, e.File, e.Line, e.Placeholders, now); err != nil {
			return 0, fmt.Errorf("upsert %q: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(entries), nil
}

// Entries returns the entries of a namespace ordered by key.
func (s *Store) Entries(ctx context.Context, namespace string) ([]catalog.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value, source, COALESCE(file, ''), COALESCE(line, 0), placeholders
		FROM entries
		WHERE namespace = ?
		ORDER BY key
	`, namespace)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []catalog.Entry
	for rows.Next() {
		var e catalog.Entry
		if err := rows.Scan(&e.Key, &e.Value, &e.Source, &e.File, &e.Line, &e.Placeholders); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Namespaces lists stored namespaces with entry counts.
func (s *Store) Namespaces(ctx context.Context) ([]NamespaceInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT namespace, COUNT(*), MAX(updated_at)
		FROM entries
		GROUP BY namespace
		ORDER BY namespace
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []NamespaceInfo
	for rows.Next() {
		var ns NamespaceInfo
		var updated string
		if err := rows.Scan(&ns.Name, &ns.Entries, &updated); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339Nano, updated); err == nil {
			ns.UpdatedAt = t
		}
		out = append(out, ns)
	}
	return out, rows.Err()
}

// DeleteNamespace removes every entry of a namespace.
func (s *Store) DeleteNamespace(ctx context.Context, namespace string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM entries WHERE namespace = ?", namespace)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Catalog loads a namespace as a catalog, ready for Resource().
func (s *Store) Catalog(ctx context.Context, namespace string) (*catalog.Catalog, error) {
	entries, err := s.Entries(ctx, namespace)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []catalog.Entry{}
	}
	return &catalog.Catalog{Entries: entries, Conflicts: []catalog.Conflict{}}, nil
}
