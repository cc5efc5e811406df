// Package orders persists orders and their line items.
package orders

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/server/models"
)

// Repository stores orders. Create writes the order row and its items with
// the same DBTX, so callers wanting atomicity bind it to a transaction.
// List and ListByUser return orders without items.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Order, error)
	Create(ctx context.Context, o *models.Order) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	// HasProduct reports whether any order line references the product.
	HasProduct(ctx context.Context, productID int64) (bool, error)
}
