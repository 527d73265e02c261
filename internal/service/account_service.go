package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

// RegisterInput carries registration fields after transport validation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *int64
	Address  *string
}

// AuthResult bundles the issued token with the sanitized profile.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Profile   domain.Profile
}

// AccountService coordinates registration, login and profile flows.
type AccountService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(cfg config.Config, users repository.UserRepository, dispatcher events.Dispatcher) *AccountService {
	return &AccountService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account and logs the caller in.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := domain.NormalizeEmail(input.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewEmailAlreadyExists()
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Address:      input.Address,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique index settles concurrent registrations; a losing
		// insert is a conflict, not an internal failure.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.NewEmailAlreadyExists()
		}
		return nil, apperrors.NewInternalError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserRegistered,
		UserID:    user.ID.Hex(),
		Timestamp: time.Now(),
		Payload:   events.UserRegisteredPayload{Name: user.Name, Email: user.Email},
	})

	return &AuthResult{Token: token, ExpiresAt: exp, Profile: user.Profile()}, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same error so callers cannot probe for registered
// addresses.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, apperrors.NewInternalError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &AuthResult{Token: token, ExpiresAt: exp, Profile: user.Profile()}, nil
}

// GetProfile returns the sanitized profile for the given user id.
func (s *AccountService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUserNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateProfile applies a partial update to name, phone and address. Email
// and password hash are untouchable through this path.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfileUpdate) (*domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUserNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	var changed []string
	if patch.Name != nil {
		user.Name = strings.TrimSpace(*patch.Name)
		changed = append(changed, "name")
	}
	if patch.Phone != nil {
		user.Phone = patch.Phone
		changed = append(changed, "phone")
	}
	if patch.Address != nil {
		user.Address = patch.Address
		changed = append(changed, "address")
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUserNotFound()
		}
		return nil, apperrors.NewInternalError(err)
	}

	if len(changed) > 0 {
		s.publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventProfileUpdated,
			UserID:    user.ID.Hex(),
			Timestamp: time.Now(),
			Payload:   events.ProfileUpdatedPayload{Fields: changed},
		})
	}

	profile := user.Profile()
	return &profile, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AccountService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AccountService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
