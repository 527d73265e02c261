package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored account record. The password hash never leaves this
// package except through Profile, which omits it.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Phone        *int64             `bson:"phone,omitempty"`
	Address      *string            `bson:"address,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// Profile is the client-safe view of a user record.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *int64    `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile returns the sanitized view of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID.Hex(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ProfileUpdate is a partial update of mutable profile fields. Email and
// password are never changed through this path.
type ProfileUpdate struct {
	Name    *string
	Phone   *int64
	Address *string
}

// NormalizeEmail lowercases and trims an email; the result is the
// uniqueness key for user records.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
