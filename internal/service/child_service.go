package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// ChildService manages child records scoped to their owning user.
type ChildService struct {
	children repository.ChildRepository
}

// NewChildService builds the service.
func NewChildService(children repository.ChildRepository) *ChildService {
	return &ChildService{children: children}
}

// CreateChild adds a child record owned by the given user.
func (s *ChildService) CreateChild(ctx context.Context, userID, name string, age *int) (*domain.ChildView, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.NewUserNotFound()
	}

	child := &domain.Child{
		UserID: owner,
		Name:   strings.TrimSpace(name),
		Age:    age,
	}
	if err := s.children.Create(ctx, child); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	view := child.View()
	return &view, nil
}

// ListChildren returns all children owned by the user.
func (s *ChildService) ListChildren(ctx context.Context, userID string) ([]domain.ChildView, error) {
	children, err := s.children.ListByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.ChildView{}, nil
		}
		return nil, apperrors.NewInternalError(err)
	}

	views := make([]domain.ChildView, 0, len(children))
	for i := range children {
		views = append(views, children[i].View())
	}
	return views, nil
}

// GetChild returns one child if it belongs to the user. A child owned by
// someone else looks exactly like a missing one.
func (s *ChildService) GetChild(ctx context.Context, userID, childID string) (*domain.ChildView, error) {
	child, err := s.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}
	view := child.View()
	return &view, nil
}

// UpdateChild applies a partial update to an owned child record.
func (s *ChildService) UpdateChild(ctx context.Context, userID, childID string, patch domain.ChildUpdate) (*domain.ChildView, error) {
	child, err := s.ownedChild(ctx, userID, childID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		child.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Age != nil {
		child.Age = patch.Age
	}

	if err := s.children.Update(ctx, child); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, childNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}
	view := child.View()
	return &view, nil
}

// DeleteChild removes an owned child record.
func (s *ChildService) DeleteChild(ctx context.Context, userID, childID string) error {
	if err := s.children.Delete(ctx, childID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return childNotFound()
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

func (s *ChildService) ownedChild(ctx context.Context, userID, childID string) (*domain.Child, error) {
	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, childNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}
	if child.UserID.Hex() != userID {
		return nil, childNotFound()
	}
	return child, nil
}

func childNotFound() error {
	return apperrors.NewDomainError("CHILD_NOT_FOUND", "child not found", http.StatusNotFound, nil)
}
