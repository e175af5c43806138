package domain

import "errors"

var (
	ErrNotFound        = errors.New("document not found")
	ErrInvalidID       = errors.New("invalid document id")
	ErrInvalidPayload  = errors.New("invalid payload")
	ErrForbidden       = errors.New("access forbidden")
	ErrPaymentProvider = errors.New("payment provider failure")
)
