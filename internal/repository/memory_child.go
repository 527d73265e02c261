package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/account-service/internal/domain"
)

// memoryChildRepository keeps child records in process memory.
type memoryChildRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Child
}

// NewMemoryChildRepository returns an in-memory implementation.
func NewMemoryChildRepository() ChildRepository {
	return &memoryChildRepository{byID: make(map[string]domain.Child)}
}

func (r *memoryChildRepository) Create(_ context.Context, child *domain.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	child.CreatedAt = now
	child.UpdatedAt = now
	if child.ID.IsZero() {
		child.ID = primitive.NewObjectID()
	}

	r.byID[child.ID.Hex()] = *child
	return nil
}

func (r *memoryChildRepository) Update(_ context.Context, child *domain.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.byID[child.ID.Hex()]
	if !exists {
		return ErrNotFound
	}

	stored.Name = child.Name
	stored.Age = child.Age
	stored.UpdatedAt = time.Now().UTC()
	r.byID[child.ID.Hex()] = stored

	child.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memoryChildRepository) Delete(_ context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.byID[id]
	if !exists || stored.UserID.Hex() != userID {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memoryChildRepository) GetByID(_ context.Context, id string) (*domain.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	child, exists := r.byID[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := child
	return &copied, nil
}

func (r *memoryChildRepository) ListByUser(_ context.Context, userID string) ([]domain.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	children := []domain.Child{}
	for _, child := range r.byID {
		if child.UserID.Hex() == userID {
			children = append(children, child)
		}
	}
	return children, nil
}
