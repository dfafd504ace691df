package database

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema applies the embedded schema. Every statement is written to be
// idempotent (CREATE TABLE IF NOT EXISTS) so it is safe to run on startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
