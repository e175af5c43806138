package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// PartRepository implements ports.PartRepository on the parts collection.
type PartRepository struct {
	docs documents
}

func NewPartRepository(db *mongo.Database) *PartRepository {
	return &PartRepository{docs: newDocuments(db, collectionParts)}
}

func (r *PartRepository) List(ctx context.Context) ([]domain.Document, error) {
	return r.docs.find(ctx, bson.M{})
}

func (r *PartRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.docs.findOne(ctx, filter)
}

func (r *PartRepository) Insert(ctx context.Context, part domain.Document) (*domain.InsertResult, error) {
	return r.docs.insertOne(ctx, part)
}

func (r *PartRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.docs.deleteOne(ctx, filter)
}

// SetQuantity upserts: an unknown id creates a part holding only its id and
// quantity.
func (r *PartRepository) SetQuantity(ctx context.Context, id string, quantity any) (*domain.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.docs.updateOne(ctx, filter, bson.M{domain.FieldQuantity: quantity}, true)
}
