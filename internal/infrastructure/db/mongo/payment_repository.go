package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// PaymentRepository appends to the payments collection. Payments are never
// read back by the API.
type PaymentRepository struct {
	docs documents
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{docs: newDocuments(db, collectionPayments)}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment domain.Document) (*domain.InsertResult, error) {
	return r.docs.insertOne(ctx, payment)
}
