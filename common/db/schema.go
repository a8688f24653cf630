package db

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed schema.sql
var schemaSQL string

// InitSchema applies the embedded schema. All statements are idempotent
// (IF NOT EXISTS), so running it at every startup is safe.
func (db *DB) InitSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	db.log.Info("database schema applied")
	return nil
}
