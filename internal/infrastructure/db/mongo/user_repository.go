package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// UserRepository implements ports.UserRepository on the users collection.
// Email is the lookup key; uniqueness is not enforced by the store.
type UserRepository struct {
	docs documents
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{docs: newDocuments(db, collectionUsers)}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.docs.find(ctx, bson.M{})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.Document, error) {
	return r.docs.findOne(ctx, bson.M{domain.FieldEmail: email})
}

func (r *UserRepository) UpsertByEmail(ctx context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	set := bson.M(fields.Without(domain.FieldID))
	return r.docs.updateOne(ctx, bson.M{domain.FieldEmail: email}, set, true)
}

func (r *UserRepository) SetRole(ctx context.Context, email, role string) (*domain.UpdateResult, error) {
	return r.docs.updateOne(ctx, bson.M{domain.FieldEmail: email}, bson.M{domain.FieldRole: role}, false)
}
