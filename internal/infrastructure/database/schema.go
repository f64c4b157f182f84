package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	pkgdb "blog-backend/pkg/database"
)

// schemaStatements mirror the document shape used by the Mongo backend:
// ids are 24-char hex strings, tags/subcategory are text arrays.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS authors (
		id          CHAR(24) PRIMARY KEY,
		fname       TEXT NOT NULL,
		lname       TEXT NOT NULL,
		title       TEXT NOT NULL,
		email       TEXT NOT NULL UNIQUE,
		password    TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS blogs (
		id            CHAR(24) PRIMARY KEY,
		title         TEXT NOT NULL,
		body          TEXT NOT NULL,
		author_id     CHAR(24) NOT NULL REFERENCES authors(id),
		tags          TEXT[] NOT NULL DEFAULT '{}',
		category      TEXT NOT NULL,
		subcategory   TEXT[] NOT NULL DEFAULT '{}',
		is_published  BOOLEAN NOT NULL DEFAULT FALSE,
		published_at  TIMESTAMPTZ,
		is_deleted    BOOLEAN NOT NULL DEFAULT FALSE,
		deleted_at    TIMESTAMPTZ,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_author_id ON blogs (author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_visibility ON blogs (is_deleted, is_published)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_tags ON blogs USING GIN (tags)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_subcategory ON blogs USING GIN (subcategory)`,
}

// Migrate tạo bảng nếu chưa có (idempotent)
func (db *PostgresDB) Migrate(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	// Một transaction: lỗi giữa chừng không để lại schema dở dang
	return pkgdb.WithTransaction(ctx, db.Pool, func(tx pgx.Tx) error {
		for _, stmt := range schemaStatements {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migrate schema: %w", err)
			}
		}
		return nil
	})
}
