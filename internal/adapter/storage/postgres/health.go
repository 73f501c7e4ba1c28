package postgres

import (
	"context"
	"errors"
	"fmt"
)

// SchemaCheck passes once the galleries table exists, which proves both the
// connection and that Migrate has run.
type SchemaCheck struct {
	pool Pool
}

func NewSchemaCheck(pool Pool) *SchemaCheck {
	return &SchemaCheck{pool: pool}
}

func (s *SchemaCheck) Name() string { return "postgresql" }

func (s *SchemaCheck) Ping(ctx context.Context) error {
	var migrated bool
	if err := s.pool.QueryRow(ctx, `SELECT to_regclass('galleries') IS NOT NULL`).Scan(&migrated); err != nil {
		return fmt.Errorf("checking schema: %w", err)
	}
	if !migrated {
		return errors.New("galleries table is missing")
	}
	return nil
}
