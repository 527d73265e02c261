package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/repository"
	"github.com/spec-kit/account-service/internal/service"
	apperrors "github.com/spec-kit/account-service/pkg/util"
)

func newAccountService(t *testing.T) (*service.AccountService, repository.UserRepository) {
	t.Helper()
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "service-test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
	users := repository.NewMemoryUserRepository()
	return service.NewAccountService(cfg, users, nil), users
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	domainErr := apperrors.ToDomainError(err)
	require.NotNil(t, domainErr)
	return domainErr.Code
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, service.RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "p12345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "a@x.com", registered.Profile.Email)
	assert.NotEmpty(t, registered.Profile.ID)

	loggedIn, err := svc.Login(ctx, "a@x.com", "p12345")
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)
	assert.Equal(t, registered.Profile.ID, loggedIn.Profile.ID)

	// The guard accepts the issued token.
	claims, err := svc.TokenManager().ParseToken(loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.Profile.ID, claims.UserID)
}

func TestAccountService_RegisterNormalizesEmail(t *testing.T) {
	svc, users := newAccountService(t)
	ctx := context.Background()

	result, err := svc.Register(ctx, service.RegisterInput{
		Name:     "A",
		Email:    "  A@X.Com ",
		Password: "p12345",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", result.Profile.Email)

	stored, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", stored.Email)
}

func TestAccountService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterInput{Name: "A", Email: "a@x.com", Password: "p12345"})
	require.NoError(t, err)

	// Case and whitespace variants collide on the normalized key.
	_, err = svc.Register(ctx, service.RegisterInput{Name: "B", Email: " A@X.COM ", Password: "other6"})
	require.Error(t, err)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", domainCode(t, err))
}

func TestAccountService_LoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, service.RegisterInput{Name: "A", Email: "a@x.com", Password: "p12345"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "a@x.com", "wrong1")
	require.Error(t, wrongPassword)
	_, unknownEmail := svc.Login(ctx, "nobody@x.com", "p12345")
	require.Error(t, unknownEmail)

	wrongErr := apperrors.ToDomainError(wrongPassword)
	unknownErr := apperrors.ToDomainError(unknownEmail)
	assert.Equal(t, wrongErr.Code, unknownErr.Code)
	assert.Equal(t, wrongErr.HTTPStatus, unknownErr.HTTPStatus)
	assert.Equal(t, wrongErr.Message, unknownErr.Message)
	assert.Equal(t, "INVALID_CREDENTIALS", wrongErr.Code)
}

func TestAccountService_GetProfile(t *testing.T) {
	svc, _ := newAccountService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, service.RegisterInput{Name: "A", Email: "a@x.com", Password: "p12345"})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, registered.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", profile.Name)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.False(t, profile.UpdatedAt.IsZero())

	_, err = svc.GetProfile(ctx, "64b2f0e1a2b3c4d5e6f70809")
	require.Error(t, err)
	assert.Equal(t, "USER_NOT_FOUND", domainCode(t, err))
}

func TestAccountService_UpdateProfile(t *testing.T) {
	svc, users := newAccountService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, service.RegisterInput{Name: "A", Email: "a@x.com", Password: "p12345"})
	require.NoError(t, err)

	before, err := users.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)

	phone := int64(555)
	name := "B"
	updated, err := svc.UpdateProfile(ctx, registered.Profile.ID, domain.ProfileUpdate{
		Name:  &name,
		Phone: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, int64(555), *updated.Phone)

	// Email and password hash survive any patch.
	after, err := users.GetByID(ctx, registered.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestAccountService_UpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newAccountService(t)

	name := "B"
	_, err := svc.UpdateProfile(context.Background(), "64b2f0e1a2b3c4d5e6f70809", domain.ProfileUpdate{Name: &name})
	require.Error(t, err)
	assert.Equal(t, "USER_NOT_FOUND", domainCode(t, err))
}
