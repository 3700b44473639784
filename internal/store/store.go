// Package store persists foods in their per-100g form, keyed by name.
package store

import (
	"errors"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
)

// ErrNoSchema is returned by writes made before CreateSchema.
var ErrNoSchema = errors.New("food table does not exist")

// InsertResult tells a caller whether Insert stored the food.
type InsertResult int

const (
	Inserted InsertResult = iota
	// Duplicate means a food with the same name already exists; nothing was written.
	Duplicate
)

func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// FoodStore is the persistence contract for foods. Names match exactly and
// case-sensitively. Missing rows are never an error: Get returns an empty
// slice and Update/Delete report zero affected rows.
type FoodStore interface {
	CreateSchema() error
	Insert(f food.Food) (InsertResult, error)
	Get(name string) ([]food.Food, error)
	Update(f food.Food) (int64, error)
	Delete(name string) (int64, error)
	List() ([]food.Food, error)
	Count() (int, error)
	Drop() error
}

var (
	_ FoodStore = (*SQLite)(nil)
	_ FoodStore = (*Memory)(nil)
)
