package ports

import (
	"context"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// PartService exposes the catalog use cases.
type PartService interface {
	ListParts(ctx context.Context) ([]domain.Document, error)
	GetPart(ctx context.Context, id string) (domain.Document, error)
	CreatePart(ctx context.Context, part domain.Document) (*domain.InsertResult, error)
	DeletePart(ctx context.Context, id string) (*domain.DeleteResult, error)
	UpdateQuantity(ctx context.Context, id string, deliveredQuantity any) (*domain.UpdateResult, error)
}

// OrderService exposes the order use cases.
type OrderService interface {
	ListOrders(ctx context.Context, client string) ([]domain.Document, error)
	GetOrder(ctx context.Context, id string) (domain.Document, error)
	CreateOrder(ctx context.Context, order domain.Document) (*domain.InsertResult, error)
	MarkPaid(ctx context.Context, id string, payment domain.Document) (*domain.MarkPaidResult, error)
}

// LoginResult is returned by UserService.Login.
type LoginResult struct {
	Result *domain.UpdateResult `json:"result"`
	Token  string               `json:"token"`
}

// UserService exposes the user use cases.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.Document, error)
	// IsAdmin reports whether the stored user for email has the admin role.
	// Unknown users are not admins.
	IsAdmin(ctx context.Context, email string) (bool, error)
	Login(ctx context.Context, email string, fields domain.Document) (*LoginResult, error)
	Promote(ctx context.Context, email string) (*domain.UpdateResult, error)
}

// PaymentService creates provider-side payment intents.
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

// PaymentIntentProvider is the third-party payment API.
type PaymentIntentProvider interface {
	// CreateIntent requests an intent for amount minor units of currency and
	// returns its client secret.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}
