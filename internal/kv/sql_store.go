package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DAbdulRaheem/ECommerce-WebSite/internal/db"
)

const (
	sqlGet    = `SELECT state_value FROM client_state WHERE install_id = ? AND state_key = ?`
	sqlDelete = `DELETE FROM client_state WHERE install_id = ? AND state_key = ?`
	sqlUpsert = `INSERT INTO client_state (install_id, state_key, state_value, updated_at)
VALUES (?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (install_id, state_key)
DO UPDATE SET state_value = excluded.state_value, updated_at = excluded.updated_at`
)

// SQLBackend persists installations in the client_state table.
// It works against both PostgreSQL and SQLite.
type SQLBackend struct {
	db *db.DB
}

func NewSQLBackend(d *db.DB) *SQLBackend {
	return &SQLBackend{db: d}
}

func (b *SQLBackend) Open(installID string) Store {
	return &sqlStore{backend: b, installID: installID}
}

func (b *SQLBackend) Close(context.Context) error {
	return b.db.Close()
}

type sqlStore struct {
	backend   *SQLBackend
	installID string
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	var val string
	err := s.backend.db.QueryRowContext(ctx, s.backend.db.Rebind(sqlGet), s.installID, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv: sql get %s: %w", key, err)
	}
	return val, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	return s.Apply(ctx, Mutation{Set: map[string]string{key: value}})
}

func (s *sqlStore) Remove(ctx context.Context, key string) error {
	return s.Apply(ctx, Mutation{Remove: []string{key}})
}

func (s *sqlStore) Apply(ctx context.Context, m Mutation) error {
	if err := m.validate(); err != nil {
		return err
	}
	if m.Empty() {
		return nil
	}

	tx, err := s.backend.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("kv: sql begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	upsert := s.backend.db.Rebind(sqlUpsert)
	for k, v := range m.Set {
		if _, err := tx.ExecContext(ctx, upsert, s.installID, k, v); err != nil {
			return fmt.Errorf("kv: sql set %s: %w", k, err)
		}
	}

	del := s.backend.db.Rebind(sqlDelete)
	for _, k := range m.Remove {
		if _, err := tx.ExecContext(ctx, del, s.installID, k); err != nil {
			return fmt.Errorf("kv: sql remove %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("kv: sql commit: %w", err)
	}
	return nil
}
