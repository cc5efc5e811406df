// Package suppliers persists product suppliers.
package suppliers

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*models.Supplier, error)
	List(ctx context.Context) ([]*models.Supplier, error)
	Create(ctx context.Context, s *models.Supplier) (*models.Supplier, error)
	Update(ctx context.Context, s *models.Supplier) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
