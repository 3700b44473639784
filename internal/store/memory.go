package store

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/ManuelMeraz-PersonalProjects/Tracker/internal/food"
)

// Memory is an in-process FoodStore with the same semantics as SQLite. It
// exists for tests and dry runs.
type Memory struct {
	mu     sync.RWMutex
	foods  map[string]food.Food
	schema bool
	log    *slog.Logger
}

func NewMemory(logger *slog.Logger) *Memory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Memory{foods: make(map[string]food.Food), log: logger}
}

func (m *Memory) CreateSchema() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schema = true
	return nil
}

func (m *Memory) Insert(f food.Food) (InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.schema {
		return Inserted, fmt.Errorf("insert food %q: %w", f.Name, ErrNoSchema)
	}
	if _, ok := m.foods[f.Name]; ok {
		m.log.Warn("food already exists", "name", f.Name)
		return Duplicate, nil
	}
	m.foods[f.Name] = stored(f)
	return Inserted, nil
}

func (m *Memory) Get(name string) ([]food.Food, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]food.Food, 0, 1)
	if f, ok := m.foods[name]; ok {
		out = append(out, f)
	}
	return out, nil
}

func (m *Memory) Update(f food.Food) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.foods[f.Name]; !ok {
		return 0, nil
	}
	m.foods[f.Name] = stored(f)
	return 1, nil
}

func (m *Memory) Delete(name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.foods[name]; !ok {
		return 0, nil
	}
	delete(m.foods, name)
	return 1, nil
}

func (m *Memory) List() ([]food.Food, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]food.Food, 0, len(m.foods))
	for _, f := range m.foods {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *Memory) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.foods), nil
}

func (m *Memory) Drop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.foods = make(map[string]food.Food)
	m.schema = false
	return nil
}

// stored strips what the table has no column for.
func stored(f food.Food) food.Food {
	f.Micronutrients = nil
	return f
}
