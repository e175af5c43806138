package ports

import (
	"context"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// PartRepository persists catalog parts.
type PartRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	// FindByID returns domain.ErrNotFound when no part has the given id.
	FindByID(ctx context.Context, id string) (domain.Document, error)
	Insert(ctx context.Context, part domain.Document) (*domain.InsertResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
	// SetQuantity overwrites the quantity field, creating the part when the
	// id does not exist yet.
	SetQuantity(ctx context.Context, id string, quantity any) (*domain.UpdateResult, error)
}

// OrderRepository persists customer orders.
type OrderRepository interface {
	ListByClient(ctx context.Context, client string) ([]domain.Document, error)
	FindByID(ctx context.Context, id string) (domain.Document, error)
	Insert(ctx context.Context, order domain.Document) (*domain.InsertResult, error)
	// MarkPaid sets paid=true and the transaction id. It never upserts.
	MarkPaid(ctx context.Context, id string, transactionID any) (*domain.UpdateResult, error)
}

// UserRepository persists users keyed by email.
type UserRepository interface {
	List(ctx context.Context) ([]domain.Document, error)
	FindByEmail(ctx context.Context, email string) (domain.Document, error)
	// UpsertByEmail sets every field of fields on the user matching email,
	// creating it when absent.
	UpsertByEmail(ctx context.Context, email string, fields domain.Document) (*domain.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*domain.UpdateResult, error)
}

// PaymentRepository is the append-only payment ledger.
type PaymentRepository interface {
	Insert(ctx context.Context, payment domain.Document) (*domain.InsertResult, error)
}

// RoleCache caches the stored role per email. A cached empty role means the
// user exists without a role.
type RoleCache interface {
	Get(ctx context.Context, email string) (role string, found bool, err error)
	Set(ctx context.Context, email, role string) error
	Invalidate(ctx context.Context, email string) error
}
