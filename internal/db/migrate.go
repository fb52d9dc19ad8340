package db

import (
	"context"
	"database/sql"
)

const clientStateMigration = `
CREATE TABLE IF NOT EXISTS client_state (
    install_id text NOT NULL,
    state_key text NOT NULL,
    state_value text NOT NULL,
    updated_at timestamp NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (install_id, state_key)
);
`

func RunClientStateMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, clientStateMigration)
	return err
}
