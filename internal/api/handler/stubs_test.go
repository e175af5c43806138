package handler

import (
	"context"

	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/core/ports"
)

type stubPartService struct {
	listFn   func(ctx context.Context) ([]domain.Document, error)
	getFn    func(ctx context.Context, id string) (domain.Document, error)
	createFn func(ctx context.Context, part domain.Document) (*domain.InsertResult, error)
	deleteFn func(ctx context.Context, id string) (*domain.DeleteResult, error)
	updateFn func(ctx context.Context, id string, qty any) (*domain.UpdateResult, error)
}

func (s *stubPartService) ListParts(ctx context.Context) ([]domain.Document, error) {
	return s.listFn(ctx)
}

func (s *stubPartService) GetPart(ctx context.Context, id string) (domain.Document, error) {
	return s.getFn(ctx, id)
}

func (s *stubPartService) CreatePart(ctx context.Context, part domain.Document) (*domain.InsertResult, error) {
	return s.createFn(ctx, part)
}

func (s *stubPartService) DeletePart(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return s.deleteFn(ctx, id)
}

func (s *stubPartService) UpdateQuantity(ctx context.Context, id string, qty any) (*domain.UpdateResult, error) {
	return s.updateFn(ctx, id, qty)
}

type stubOrderService struct {
	listFn     func(ctx context.Context, client string) ([]domain.Document, error)
	getFn      func(ctx context.Context, id string) (domain.Document, error)
	createFn   func(ctx context.Context, order domain.Document) (*domain.InsertResult, error)
	markPaidFn func(ctx context.Context, id string, payment domain.Document) (*domain.MarkPaidResult, error)
}

func (s *stubOrderService) ListOrders(ctx context.Context, client string) ([]domain.Document, error) {
	return s.listFn(ctx, client)
}

func (s *stubOrderService) GetOrder(ctx context.Context, id string) (domain.Document, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, order domain.Document) (*domain.InsertResult, error) {
	return s.createFn(ctx, order)
}

func (s *stubOrderService) MarkPaid(ctx context.Context, id string, payment domain.Document) (*domain.MarkPaidResult, error) {
	return s.markPaidFn(ctx, id, payment)
}

type stubUserService struct {
	listFn    func(ctx context.Context) ([]domain.Document, error)
	isAdminFn func(ctx context.Context, email string) (bool, error)
	loginFn   func(ctx context.Context, email string, fields domain.Document) (*ports.LoginResult, error)
	promoteFn func(ctx context.Context, email string) (*domain.UpdateResult, error)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.Document, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.isAdminFn(ctx, email)
}

func (s *stubUserService) Login(ctx context.Context, email string, fields domain.Document) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, fields)
}

func (s *stubUserService) Promote(ctx context.Context, email string) (*domain.UpdateResult, error) {
	return s.promoteFn(ctx, email)
}

type stubPaymentService struct {
	createFn func(ctx context.Context, price float64) (string, error)
}

func (s *stubPaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	return s.createFn(ctx, price)
}
