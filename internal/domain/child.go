package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Child is a dependent record owned by exactly one user.
type Child struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Name      string             `bson:"name"`
	Age       *int               `bson:"age,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// ChildView is the client-facing shape of a child record.
type ChildView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View returns the serializable form of the child.
func (c *Child) View() ChildView {
	return ChildView{
		ID:        c.ID.Hex(),
		UserID:    c.UserID.Hex(),
		Name:      c.Name,
		Age:       c.Age,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ChildUpdate is a partial update of mutable child fields.
type ChildUpdate struct {
	Name *string
	Age  *int
}
