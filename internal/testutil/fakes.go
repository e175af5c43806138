package testutil

import (
	"context"
	"sync"
)

// RoleCache is an in-memory ports.RoleCache that counts hits.
type RoleCache struct {
	mu    sync.Mutex
	roles map[string]string
	Hits  int
	// Err, when set, is returned by Get.
	Err error
}

// NewRoleCache returns an empty RoleCache.
func NewRoleCache() *RoleCache {
	return &RoleCache{roles: make(map[string]string)}
}

func (r *RoleCache) Get(_ context.Context, email string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return "", false, r.Err
	}
	role, ok := r.roles[email]
	if ok {
		r.Hits++
	}
	return role, ok, nil
}

func (r *RoleCache) Set(_ context.Context, email, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles[email] = role
	return nil
}

func (r *RoleCache) Invalidate(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.roles, email)
	return nil
}

// Cached reports whether a role is cached for email.
func (r *RoleCache) Cached(email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.roles[email]
	return ok
}

// IntentCall records one PaymentProvider.CreateIntent call.
type IntentCall struct {
	Amount   int64
	Currency string
}

// PaymentProvider is a ports.PaymentIntentProvider that returns Secret (or
// Err) and records every call.
type PaymentProvider struct {
	mu     sync.Mutex
	Secret string
	Err    error
	Calls  []IntentCall
}

func (p *PaymentProvider) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, IntentCall{Amount: amount, Currency: currency})
	if p.Err != nil {
		return "", p.Err
	}
	return p.Secret, nil
}
