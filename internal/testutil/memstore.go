// Package testutil provides an in-memory implementation of every repository
// port, with the same upsert and matching rules as the MongoDB repositories.
package testutil

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// Store holds the four collections. It is safe for concurrent use.
type Store struct {
	Parts    *Parts
	Orders   *Orders
	Users    *Users
	Payments *Payments
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		Parts:    &Parts{c: newCollection()},
		Orders:   &Orders{c: newCollection()},
		Users:    &Users{c: newCollection()},
		Payments: &Payments{c: newCollection()},
	}
}

type collection struct {
	mu   sync.Mutex
	docs []domain.Document
	// Err, when set, is returned by every operation.
	err error
}

func newCollection() *collection { return &collection{} }

func checkID(id string) error { return domain.CheckID(id) }

func (c *collection) all(match func(domain.Document) bool) ([]domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Document, 0, len(c.docs))
	for _, d := range c.docs {
		if match == nil || match(d) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

func (c *collection) one(match func(domain.Document) bool) (domain.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	for _, d := range c.docs {
		if match(d) {
			return d.Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (c *collection) insert(doc domain.Document) (*domain.InsertResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	stored := doc.Clone()
	if stored == nil {
		stored = domain.Document{}
	}
	if stored.ID() == "" {
		stored[domain.FieldID] = primitive.NewObjectID().Hex()
	}
	c.docs = append(c.docs, stored)
	return &domain.InsertResult{Acknowledged: true, InsertedID: stored.ID()}, nil
}

// update applies set to the first match. With upsert and no match, a new
// document is built from seed plus set.
func (c *collection) update(match func(domain.Document) bool, set domain.Document, upsert bool, seed domain.Document) (*domain.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	for _, d := range c.docs {
		if !match(d) {
			continue
		}
		modified := int64(0)
		for k, v := range set {
			if old, ok := d[k]; !ok || !reflect.DeepEqual(old, v) {
				modified = 1
			}
			d[k] = v
		}
		return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
	}
	if !upsert {
		return &domain.UpdateResult{Acknowledged: true}, nil
	}

	created := seed.Clone()
	if created == nil {
		created = domain.Document{}
	}
	for k, v := range set {
		created[k] = v
	}
	if created.ID() == "" {
		created[domain.FieldID] = primitive.NewObjectID().Hex()
	}
	c.docs = append(c.docs, created)
	return &domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: created.ID()}, nil
}

func (c *collection) delete(match func(domain.Document) bool) (*domain.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	for i, d := range c.docs {
		if match(d) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &domain.DeleteResult{Acknowledged: true}, nil
}

func (c *collection) failWith(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

func byID(id string) func(domain.Document) bool {
	return func(d domain.Document) bool { return d.ID() == id }
}

func byField(key, value string) func(domain.Document) bool {
	return func(d domain.Document) bool {
		v, ok := d[key].(string)
		return ok && v == value
	}
}

// Parts implements ports.PartRepository.
type Parts struct{ c *collection }

func (p *Parts) List(_ context.Context) ([]domain.Document, error) { return p.c.all(nil) }

func (p *Parts) FindByID(_ context.Context, id string) (domain.Document, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return p.c.one(byID(id))
}

func (p *Parts) Insert(_ context.Context, part domain.Document) (*domain.InsertResult, error) {
	return p.c.insert(part)
}

func (p *Parts) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return p.c.delete(byID(id))
}

func (p *Parts) SetQuantity(_ context.Context, id string, quantity any) (*domain.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return p.c.update(byID(id), domain.Document{domain.FieldQuantity: quantity}, true, domain.Document{domain.FieldID: id})
}

// FailWith makes every subsequent call return err.
func (p *Parts) FailWith(err error) { p.c.failWith(err) }

// Orders implements ports.OrderRepository.
type Orders struct{ c *collection }

func (o *Orders) ListByClient(_ context.Context, client string) ([]domain.Document, error) {
	return o.c.all(byField(domain.FieldClient, client))
}

func (o *Orders) FindByID(_ context.Context, id string) (domain.Document, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	return o.c.one(byID(id))
}

func (o *Orders) Insert(_ context.Context, order domain.Document) (*domain.InsertResult, error) {
	return o.c.insert(order)
}

func (o *Orders) MarkPaid(_ context.Context, id string, transactionID any) (*domain.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	set := domain.Document{domain.FieldPaid: true, domain.FieldTransactionID: transactionID}
	return o.c.update(byID(id), set, false, nil)
}

// FailWith makes every subsequent call return err.
func (o *Orders) FailWith(err error) { o.c.failWith(err) }

// Users implements ports.UserRepository.
type Users struct{ c *collection }

func (u *Users) List(_ context.Context) ([]domain.Document, error) { return u.c.all(nil) }

func (u *Users) FindByEmail(_ context.Context, email string) (domain.Document, error) {
	return u.c.one(byField(domain.FieldEmail, email))
}

func (u *Users) UpsertByEmail(_ context.Context, email string, fields domain.Document) (*domain.UpdateResult, error) {
	return u.c.update(byField(domain.FieldEmail, email), fields, true, domain.Document{domain.FieldEmail: email})
}

func (u *Users) SetRole(_ context.Context, email, role string) (*domain.UpdateResult, error) {
	return u.c.update(byField(domain.FieldEmail, email), domain.Document{domain.FieldRole: role}, false, nil)
}

// Seed inserts a user document as-is, bypassing the login path.
func (u *Users) Seed(user domain.Document) {
	_, _ = u.c.insert(user)
}

// FailWith makes every subsequent call return err.
func (u *Users) FailWith(err error) { u.c.failWith(err) }

// Payments implements ports.PaymentRepository.
type Payments struct{ c *collection }

func (p *Payments) Insert(_ context.Context, payment domain.Document) (*domain.InsertResult, error) {
	return p.c.insert(payment)
}

// All returns every stored payment.
func (p *Payments) All() []domain.Document {
	docs, _ := p.c.all(nil)
	return docs
}

// FailWith makes every subsequent call return err.
func (p *Payments) FailWith(err error) { p.c.failWith(err) }
