package db

import (
	"database/sql"
	"fmt"
)

// FoodTable is the single table foods are stored in. Its name and columns
// are stable across releases.
const FoodTable = "food"

type migration struct {
	version int
	name    string
	// table is recreated from sql when the migration is recorded but the
	// table is gone.
	table string
	sql   string
}

var migrations = []migration{
	{
		version: 1,
		name:    "food_table",
		table:   FoodTable,
		sql: `
CREATE TABLE IF NOT EXISTS food (
  name TEXT,
  calories REAL,
  fat REAL,
  carb REAL,
  fiber REAL,
  protein REAL,
  UNIQUE(name)
);
`,
	},
}

// ApplyMigrations brings the schema up to date. It is safe to call on every
// start.
func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			if err := restoreTable(db, m); err != nil {
				return err
			}
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}

func restoreTable(db *sql.DB, m migration) error {
	if m.table == "" {
		return nil
	}
	exists, err := TableExists(db, m.table)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := db.Exec(m.sql); err != nil {
		return fmt.Errorf("restore %s table from migration version %d: %w", m.table, m.version, err)
	}
	return nil
}

// DropFoodTable removes the food table and forgets the migrations that built
// it, so a later ApplyMigrations recreates it.
func DropFoodTable(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin drop tx: %w", err)
	}
	if _, err := tx.Exec(`DROP TABLE IF EXISTS food`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("drop food table: %w", err)
	}
	if _, err := tx.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("reset schema_migrations: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit drop tx: %w", err)
	}
	return nil
}

// TableExists reports whether name is a table in the database.
func TableExists(db *sql.DB, name string) (bool, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&count); err != nil {
		return false, fmt.Errorf("check table %q: %w", name, err)
	}
	return count > 0, nil
}
