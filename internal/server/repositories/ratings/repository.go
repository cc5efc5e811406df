// Package ratings persists product ratings.
package ratings

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/server/models"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Rating, error)
	List(ctx context.Context) ([]*models.Rating, error)
	ListByProduct(ctx context.Context, productID int64) ([]*models.Rating, error)
	Create(ctx context.Context, r *models.Rating) (*models.Rating, error)
	Update(ctx context.Context, r *models.Rating) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
