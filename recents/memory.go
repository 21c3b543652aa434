package recents

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps searches in process as archived rows, the same form
// GormRepository writes. It is safe for concurrent use.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows []*SearchModel
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Save(_ context.Context, s *Search) error {
	row, err := toSearchModel(s)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, limit int) ([]*Search, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = len(r.rows)
	}
	out := make([]*Search, 0, min(limit, len(r.rows)))
	for _, row := range slices.Backward(r.rows) {
		if len(out) == limit {
			break
		}
		s, err := toSearchDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.rows, func(m *SearchModel) bool { return m.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	r.rows = slices.Delete(r.rows, i, i+1)
	return nil
}
