// Package users declares and implements persistence for accounts, their
// roles and the refresh token stored on the user row.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/server/models"
)

// Repository is the credential store used by the user service.
type Repository interface {
	// Create inserts a user and fills ID and CreatedAt. A taken username
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByLogin returns common.ErrorNotFound for an unknown username.
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)

	GetRoles(ctx context.Context, userID string) ([]string, error)

	// AddRole is idempotent.
	AddRole(ctx context.Context, userID string, role string) error

	// UpdateRefreshToken overwrites the user's refresh token and expiry.
	UpdateRefreshToken(ctx context.Context, userID string, token string, expiry time.Time) error

	// FindByRefreshToken returns the user whose stored token and expiry both
	// equal the arguments, or common.ErrorNotFound.
	FindByRefreshToken(ctx context.Context, token string, expiry time.Time) (*models.User, error)
}
