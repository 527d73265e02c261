package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/account-service/internal/domain"
)

// memoryUserRepository keeps user records in process memory. It backs tests
// and DSN-less development runs with the same uniqueness guarantee the Mongo
// index provides.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string
}

// NewMemoryUserRepository returns an in-memory implementation.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	r.byID[user.ID.Hex()] = *user
	r.byEmail[user.Email] = user.ID.Hex()
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.byID[user.ID.Hex()]
	if !exists {
		return ErrNotFound
	}

	stored.Name = user.Name
	stored.Phone = user.Phone
	stored.Address = user.Address
	stored.UpdatedAt = time.Now().UTC()
	r.byID[user.ID.Hex()] = stored

	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.byID[id]
	if !exists {
		return nil, ErrNotFound
	}
	copied := user
	return &copied, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byEmail[email]
	if !exists {
		return nil, ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}
