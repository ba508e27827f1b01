// Package common defines shared constants and sentinel errors used across
// the storefront layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors (bad input, reported before touching the store).
	ErrorValidation = errors.New("validation error")

	// Cart errors.
	ErrorEmptyCart = errors.New("cart is empty")
)
