// Package repositorytest provides an in-memory Repository for tests of
// code that depends on repository.Factory.
package repositorytest

import (
	"context"
	"sort"
	"sync"

	"bookstore-api/pkg/repository"
)

// Memory is a map-backed store shared by every Repository its Factory opens.
// Writes are staged per repository and applied on Save, like the PostgreSQL one.
type Memory[T any] struct {
	mu     sync.Mutex
	rows   map[int64]T
	nextID int64
	table  repository.Table[T]

	// Err, when set, is returned by every call.
	Err error
	// NoOp makes every write report zero affected rows.
	NoOp bool
}

// NewMemory seeds the store with rows; identities come from table.ID.
func NewMemory[T any](table repository.Table[T], rows ...T) *Memory[T] {
	m := &Memory[T]{rows: make(map[int64]T), table: table}
	for i := range rows {
		id := table.ID(&rows[i])
		m.rows[id] = rows[i]
		if id > m.nextID {
			m.nextID = id
		}
	}
	return m
}

// Factory returns a Factory over m.
func (m *Memory[T]) Factory() repository.Factory[T] {
	return func() repository.Repository[T] {
		return &memoryRepo[T]{store: m}
	}
}

// Get returns the stored row for id.
func (m *Memory[T]) Get(id int64) (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	return row, ok
}

// Len returns the number of stored rows.
func (m *Memory[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memoryRepo[T any] struct {
	store   *Memory[T]
	pending []func() int64
}

func (r *memoryRepo[T]) FindAll(context.Context) ([]*T, error) {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		row := m.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *memoryRepo[T]) FindByID(_ context.Context, id int64) (*T, error) {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *memoryRepo[T]) Exists(_ context.Context, id int64) (bool, error) {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.rows[id]
	return ok, nil
}

func (r *memoryRepo[T]) Create(ctx context.Context, entity *T) (bool, error) {
	m := r.store
	r.pending = append(r.pending, func() int64 {
		m.nextID++
		m.table.SetID(entity, m.nextID)
		m.rows[m.nextID] = *entity
		return 1
	})
	return r.Save(ctx)
}

func (r *memoryRepo[T]) Update(ctx context.Context, entity *T) (bool, error) {
	m := r.store
	r.pending = append(r.pending, func() int64 {
		id := m.table.ID(entity)
		if _, ok := m.rows[id]; !ok {
			return 0
		}
		m.rows[id] = *entity
		return 1
	})
	return r.Save(ctx)
}

func (r *memoryRepo[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	m := r.store
	r.pending = append(r.pending, func() int64 {
		id := m.table.ID(entity)
		if _, ok := m.rows[id]; !ok {
			return 0
		}
		delete(m.rows, id)
		return 1
	})
	return r.Save(ctx)
}

func (r *memoryRepo[T]) Save(context.Context) (bool, error) {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	pending := r.pending
	r.pending = nil
	if m.Err != nil {
		return false, m.Err
	}
	if m.NoOp {
		return false, nil
	}

	var affected int64
	for _, apply := range pending {
		affected += apply()
	}
	return affected > 0, nil
}
