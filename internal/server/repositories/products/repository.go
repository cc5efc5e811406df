// Package products persists catalog products.
package products

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/server/models"
)

// Repository stores products. GetByID returns the bare row; GetDetailed also
// joins the category and supplier.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetDetailed(ctx context.Context, id int64) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Create(ctx context.Context, p *models.Product) (*models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
