package store_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/config"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/db"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/store"
)

type storeFactory func(t *testing.T, logger *slog.Logger) store.FoodStore

func factories() map[string]storeFactory {
	return map[string]storeFactory{
		"sqlite": func(t *testing.T, logger *slog.Logger) store.FoodStore {
			t.Helper()
			s, err := store.NewSQLite(store.Config{Path: filepath.Join(t.TempDir(), "tracker.db")}, store.WithLogger(logger))
			require.NoError(t, err)
			return s
		},
		"memory": func(t *testing.T, logger *slog.Logger) store.FoodStore {
			t.Helper()
			return store.NewMemory(logger)
		},
	}
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return config.NewTestLogger(buf, "DEBUG")
}

func apple() food.Food {
	return food.Food{Name: "apple", Calories: 52, Fat: 0.2, Carb: 14, Fiber: 2.4, Protein: 0.3}
}

func TestFoodStoreContract(t *testing.T) {
	t.Parallel()

	for name, newStore := range factories() {
		newStore := newStore
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("insert then get", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())

				res, err := s.Insert(apple())
				require.NoError(t, err)
				assert.Equal(t, store.Inserted, res)

				got, err := s.Get("apple")
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, apple(), got[0])
			})

			t.Run("duplicate insert keeps first", func(t *testing.T) {
				t.Parallel()
				logs := &bytes.Buffer{}
				s := newStore(t, newLogger(logs))
				require.NoError(t, s.CreateSchema())

				_, err := s.Insert(apple())
				require.NoError(t, err)

				second := apple()
				second.Calories = 95
				second.Protein = 1
				res, err := s.Insert(second)
				require.NoError(t, err)
				assert.Equal(t, store.Duplicate, res)
				assert.Contains(t, logs.String(), "food already exists")

				got, err := s.Get("apple")
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, apple(), got[0])

				count, err := s.Count()
				require.NoError(t, err)
				assert.Equal(t, 1, count)
			})

			t.Run("get is exact and case sensitive", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())
				_, err := s.Insert(apple())
				require.NoError(t, err)

				for _, miss := range []string{"Apple", "appl", "apple ", ""} {
					got, err := s.Get(miss)
					require.NoError(t, err)
					assert.Empty(t, got, miss)
					assert.NotNil(t, got, miss)
				}
			})

			t.Run("get before schema is empty", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))

				got, err := s.Get("apple")
				require.NoError(t, err)
				assert.Empty(t, got)

				all, err := s.List()
				require.NoError(t, err)
				assert.Empty(t, all)

				count, err := s.Count()
				require.NoError(t, err)
				assert.Zero(t, count)
			})

			t.Run("insert before schema fails", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))

				_, err := s.Insert(apple())
				assert.ErrorIs(t, err, store.ErrNoSchema)
			})

			t.Run("create schema is idempotent", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())
				_, err := s.Insert(apple())
				require.NoError(t, err)
				require.NoError(t, s.CreateSchema())

				got, err := s.Get("apple")
				require.NoError(t, err)
				assert.Len(t, got, 1)
			})

			t.Run("update overwrites numbers", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())
				_, err := s.Insert(apple())
				require.NoError(t, err)

				changed := apple()
				changed.Calories = 18
				changed.Fiber = 0
				n, err := s.Update(changed)
				require.NoError(t, err)
				assert.EqualValues(t, 1, n)

				got, err := s.Get("apple")
				require.NoError(t, err)
				require.Len(t, got, 1)
				assert.Equal(t, changed, got[0])
			})

			t.Run("update missing name is a no-op", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())

				before, err := s.Get("pear")
				require.NoError(t, err)
				assert.Empty(t, before)

				n, err := s.Update(food.Food{Name: "ghost", Calories: 1})
				require.NoError(t, err)
				assert.Zero(t, n)

				after, err := s.Get("pear")
				require.NoError(t, err)
				assert.Empty(t, after)
				ghost, err := s.Get("ghost")
				require.NoError(t, err)
				assert.Empty(t, ghost)
			})

			t.Run("delete", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())
				_, err := s.Insert(apple())
				require.NoError(t, err)

				n, err := s.Delete("ghost")
				require.NoError(t, err)
				assert.Zero(t, n)
				count, err := s.Count()
				require.NoError(t, err)
				assert.Equal(t, 1, count)

				n, err = s.Delete("apple")
				require.NoError(t, err)
				assert.EqualValues(t, 1, n)
				got, err := s.Get("apple")
				require.NoError(t, err)
				assert.Empty(t, got)

				n, err = s.Delete("apple")
				require.NoError(t, err)
				assert.Zero(t, n)
			})

			t.Run("list is ordered by name", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())
				for _, name := range []string{"pear", "apple", "kiwi"} {
					f := apple()
					f.Name = name
					_, err := s.Insert(f)
					require.NoError(t, err)
				}

				all, err := s.List()
				require.NoError(t, err)
				require.Len(t, all, 3)
				assert.Equal(t, "apple", all[0].Name)
				assert.Equal(t, "kiwi", all[1].Name)
				assert.Equal(t, "pear", all[2].Name)
			})

			t.Run("drop removes everything", func(t *testing.T) {
				t.Parallel()
				s := newStore(t, newLogger(&bytes.Buffer{}))
				require.NoError(t, s.CreateSchema())
				_, err := s.Insert(apple())
				require.NoError(t, err)

				require.NoError(t, s.Drop())
				require.NoError(t, s.Drop())
				got, err := s.Get("apple")
				require.NoError(t, err)
				assert.Empty(t, got)

				require.NoError(t, s.CreateSchema())
				res, err := s.Insert(apple())
				require.NoError(t, err)
				assert.Equal(t, store.Inserted, res)
			})
		})
	}
}

func TestSQLiteRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := store.NewSQLite(store.Config{Path: "  "})
	assert.Error(t, err)
}

func TestSQLiteStoresMicronutrientsAsAbsent(t *testing.T) {
	t.Parallel()

	s, err := store.NewSQLite(store.Config{Path: filepath.Join(t.TempDir(), "tracker.db")})
	require.NoError(t, err)
	require.NoError(t, s.CreateSchema())

	f := apple()
	f.Micronutrients = &food.Micronutrients{}
	_, err = s.Insert(f)
	require.NoError(t, err)

	got, err := s.Get("apple")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Micronutrients)
}

func TestSQLiteCreateSchemaRestoresDroppedTable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tracker.db")
	s, err := store.NewSQLite(store.Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.CreateSchema())

	sqldb, err := db.Open(path)
	require.NoError(t, err)
	_, err = sqldb.Exec(`DROP TABLE food`)
	require.NoError(t, err)
	require.NoError(t, sqldb.Close())

	require.NoError(t, s.CreateSchema())
	res, err := s.Insert(apple())
	require.NoError(t, err)
	assert.Equal(t, store.Inserted, res)
}

func TestInsertResultString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "inserted", store.Inserted.String())
	assert.Equal(t, "duplicate", store.Duplicate.String())
}
