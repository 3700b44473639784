package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/db"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
)

// Config locates the SQLite database file.
type Config struct {
	Path string
}

// SQLite is a FoodStore backed by a SQLite file. Every operation opens its
// own connection, runs a single auto-committed statement and closes it.
type SQLite struct {
	cfg Config
	log *slog.Logger
}

type Option func(*SQLite)

func WithLogger(logger *slog.Logger) Option {
	return func(s *SQLite) {
		if logger != nil {
			s.log = logger
		}
	}
}

func NewSQLite(cfg Config, opts ...Option) (*SQLite, error) {
	cfg.Path = strings.TrimSpace(cfg.Path)
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite store: database path is required")
	}
	s := &SQLite{cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *SQLite) Path() string {
	return s.cfg.Path
}

func (s *SQLite) withConn(run func(*sql.DB) error) error {
	sqldb, err := db.Open(s.cfg.Path)
	if err != nil {
		return err
	}
	defer sqldb.Close()
	return run(sqldb)
}

func (s *SQLite) CreateSchema() error {
	return s.withConn(db.ApplyMigrations)
}

func (s *SQLite) Insert(f food.Food) (InsertResult, error) {
	result := Inserted
	err := s.withConn(func(sqldb *sql.DB) error {
		_, err := sqldb.Exec(`INSERT INTO food(name, calories, fat, carb, fiber, protein) VALUES(?, ?, ?, ?, ?, ?)`,
			f.Name, f.Calories, f.Fat, f.Carb, f.Fiber, f.Protein)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err) {
			s.log.Warn("food already exists", "name", f.Name)
			result = Duplicate
			return nil
		}
		if isMissingTable(err) {
			return fmt.Errorf("insert food %q: %w", f.Name, ErrNoSchema)
		}
		return fmt.Errorf("insert food %q: %w", f.Name, err)
	})
	if err != nil {
		return Inserted, err
	}
	return result, nil
}

func (s *SQLite) Get(name string) ([]food.Food, error) {
	out := make([]food.Food, 0)
	err := s.withConn(func(sqldb *sql.DB) error {
		rows, err := sqldb.Query(foodSelectBase()+` WHERE name = ?`, name)
		if err != nil {
			if isMissingTable(err) {
				s.log.Debug("food table missing on lookup", "name", name)
				return nil
			}
			return fmt.Errorf("get food %q: %w", name, err)
		}
		defer rows.Close()
		out, err = scanFoods(rows, out)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) Update(f food.Food) (int64, error) {
	var affected int64
	err := s.withConn(func(sqldb *sql.DB) error {
		res, err := sqldb.Exec(`
UPDATE food
SET calories = ?, fat = ?, carb = ?, fiber = ?, protein = ?
WHERE name = ?
`, f.Calories, f.Fat, f.Carb, f.Fiber, f.Protein, f.Name)
		if err != nil {
			if isMissingTable(err) {
				return nil
			}
			return fmt.Errorf("update food %q: %w", f.Name, err)
		}
		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("resolve updated rows for %q: %w", f.Name, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		s.log.Debug("update matched no food", "name", f.Name)
	}
	return affected, nil
}

func (s *SQLite) Delete(name string) (int64, error) {
	var affected int64
	err := s.withConn(func(sqldb *sql.DB) error {
		res, err := sqldb.Exec(`DELETE FROM food WHERE name = ?`, name)
		if err != nil {
			if isMissingTable(err) {
				return nil
			}
			return fmt.Errorf("delete food %q: %w", name, err)
		}
		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("resolve deleted rows for %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (s *SQLite) List() ([]food.Food, error) {
	out := make([]food.Food, 0)
	err := s.withConn(func(sqldb *sql.DB) error {
		rows, err := sqldb.Query(foodSelectBase() + ` ORDER BY name ASC`)
		if err != nil {
			if isMissingTable(err) {
				return nil
			}
			return fmt.Errorf("list foods: %w", err)
		}
		defer rows.Close()
		out, err = scanFoods(rows, out)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SQLite) Count() (int, error) {
	var count int
	err := s.withConn(func(sqldb *sql.DB) error {
		if err := sqldb.QueryRow(`SELECT COUNT(1) FROM food`).Scan(&count); err != nil {
			if isMissingTable(err) {
				return nil
			}
			return fmt.Errorf("count foods: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *SQLite) Drop() error {
	return s.withConn(db.DropFoodTable)
}

func foodSelectBase() string {
	return `SELECT name, calories, fat, carb, fiber, protein FROM food`
}

func scanFoods(rows *sql.Rows, out []food.Food) ([]food.Food, error) {
	for rows.Next() {
		var f food.Food
		if err := rows.Scan(&f.Name, &f.Calories, &f.Fat, &f.Carb, &f.Fiber, &f.Protein); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}
	return out, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	default:
		return false
	}
}

// isMissingTable matches on the message; SQLite reports a missing table as a
// plain SQLITE_ERROR with no extended code.
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
