package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// OrderRepository implements ports.OrderRepository on the orders collection.
type OrderRepository struct {
	docs documents
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{docs: newDocuments(db, collectionOrders)}
}

// ListByClient matches the client field exactly.
func (r *OrderRepository) ListByClient(ctx context.Context, client string) ([]domain.Document, error) {
	return r.docs.find(ctx, bson.M{domain.FieldClient: client})
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (domain.Document, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	return r.docs.findOne(ctx, filter)
}

func (r *OrderRepository) Insert(ctx context.Context, order domain.Document) (*domain.InsertResult, error) {
	return r.docs.insertOne(ctx, order)
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id string, transactionID any) (*domain.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		domain.FieldPaid:          true,
		domain.FieldTransactionID: transactionID,
	}
	return r.docs.updateOne(ctx, filter, set, false)
}
