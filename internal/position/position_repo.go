package position

import (
	"context"
	"sync"

	positionerrors "go-hris-registry/internal/position/errors"
)

//go:generate mockgen -source=position_repo.go -destination=mock/position_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Position) error
	FindAll(ctx context.Context) ([]*Position, error)
	FindByID(ctx context.Context, id string) (*Position, error)
}

// repository is the in-memory position catalog. It hands out the stored
// pointers so every employee holding a position shares the same value.
type repository struct {
	mu        sync.RWMutex
	byID      map[string]*Position
	positions []*Position
}

func NewRepository() Repository {
	return &repository{byID: make(map[string]*Position)}
}

func (r *repository) Create(ctx context.Context, p *Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return positionerrors.ErrPositionAlreadyExists
	}
	r.byID[p.ID] = p
	r.positions = append(r.positions, p)
	return nil
}

func (r *repository) FindAll(ctx context.Context) ([]*Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Position, len(r.positions))
	copy(out, r.positions)
	return out, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, positionerrors.ErrPositionNotFound
	}
	return p, nil
}
