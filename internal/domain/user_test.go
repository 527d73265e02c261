package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
	assert.Equal(t, "a@x.com", NormalizeEmail("a@x.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestProfile_OmitsPasswordHash(t *testing.T) {
	user := User{
		ID:           primitive.NewObjectID(),
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "secret-hash",
	}

	raw, err := json.Marshal(user.Profile())
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret-hash")
	assert.Contains(t, string(raw), "a@x.com")
}
