package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/xpboard/internal/client/migrations"
	"github.com/dmitrijs2005/xpboard/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and brings
// its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
