package export

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/spenweb/kd/internal/fileutil"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion identifies the table layout written into exported databases.
const schemaVersion = 1

// writeSQLite builds the database beside path and renames it into place once
// every row is committed.
func writeSQLite(ctx context.Context, path string, doc document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	tmpPath := path + ".partial"
	if err := fileutil.RemoveIfExists(tmpPath); err != nil {
		return fmt.Errorf("remove stale partial export: %w", err)
	}

	if err := fillDatabase(ctx, tmpPath, doc); err != nil {
		_ = fileutil.RemoveIfExists(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = fileutil.RemoveIfExists(tmpPath)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

func fillDatabase(ctx context.Context, dbPath string, doc document) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("apply pragma: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	for _, show := range doc.Shows {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shows (id, name, release_year) VALUES (?, ?, ?)`,
			show.ID, show.Name, show.ReleaseYear,
		); err != nil {
			return fmt.Errorf("insert show %q: %w", show.Name, err)
		}
		for i, c := range show.Characters {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO characters (id, show_id, position, name, role, gender) VALUES (?, ?, ?, ?, ?, ?)`,
				c.ID, show.ID, i, c.Name, c.Role, c.Gender,
			); err != nil {
				return fmt.Errorf("insert character %q: %w", c.Name, err)
			}
		}
		for _, r := range show.Relationships {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO relationships (id, show_id, source_id, target_id, kind) VALUES (?, ?, ?, ?, ?)`,
				r.ID, show.ID, r.SourceID, r.TargetID, r.Kind,
			); err != nil {
				return fmt.Errorf("insert relationship %s: %w", r.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}
