package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/account-service/internal/domain"
)

// ChildRepository defines persistence access for child records.
type ChildRepository interface {
	Create(ctx context.Context, child *domain.Child) error
	Update(ctx context.Context, child *domain.Child) error
	Delete(ctx context.Context, id, userID string) error
	GetByID(ctx context.Context, id string) (*domain.Child, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Child, error)
}

type childRepository struct {
	children *mongo.Collection
}

// NewChildRepository returns a Mongo-backed implementation over the given
// children collection.
func NewChildRepository(children *mongo.Collection) ChildRepository {
	return &childRepository{children: children}
}

func (r *childRepository) Create(ctx context.Context, child *domain.Child) error {
	now := time.Now().UTC()
	child.CreatedAt = now
	child.UpdatedAt = now
	if child.ID.IsZero() {
		child.ID = primitive.NewObjectID()
	}

	_, err := r.children.InsertOne(ctx, child)
	return err
}

func (r *childRepository) Update(ctx context.Context, child *domain.Child) error {
	child.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"name":       child.Name,
		"age":        child.Age,
		"updated_at": child.UpdatedAt,
	}}

	res, err := r.children.UpdateByID(ctx, child.ID, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *childRepository) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.children.DeleteOne(ctx, bson.M{"_id": oid, "user_id": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *childRepository) GetByID(ctx context.Context, id string) (*domain.Child, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var child domain.Child
	if err := r.children.FindOne(ctx, bson.M{"_id": oid}).Decode(&child); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) ListByUser(ctx context.Context, userID string) ([]domain.Child, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNotFound
	}

	cursor, err := r.children.Find(ctx, bson.M{"user_id": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	children := []domain.Child{}
	if err := cursor.All(ctx, &children); err != nil {
		return nil, err
	}
	return children, nil
}
