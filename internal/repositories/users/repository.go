// Package users provides persistence for storefront accounts.
package users

import (
	"context"

	"github.com/avoskres/parlor/internal/models"
)

// Repository is the persistence contract for user accounts.
//
// Create returns common.ErrorAlreadyExists when the username is taken;
// GetByUserName returns common.ErrorNotFound for unknown usernames.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
}
