package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/server/assets"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/services"
)

// Business services the handlers delegate to. The concrete types live in
// the services package.
type (
	UserService interface {
		Register(ctx context.Context, userName, password string, roles []string) (*models.User, error)
		Login(ctx context.Context, userName, password string) (*services.TokenPair, error)
		Refresh(ctx context.Context, token string, expiry time.Time) (*services.TokenPair, error)
	}

	ProductService interface {
		GetByID(ctx context.Context, id int64) (*models.Product, error)
		GetAll(ctx context.Context) ([]*models.Product, error)
		Create(ctx context.Context, in services.ProductInput, image *assets.Upload) (*models.Product, error)
		Update(ctx context.Context, id int64, in services.ProductInput, image *assets.Upload) (*models.Product, error)
		Delete(ctx context.Context, id int64) error
		ImageURL(ctx context.Context, id int64) (string, error)
	}

	CatalogService[T any] interface {
		GetByID(ctx context.Context, id int64) (*T, error)
		GetAll(ctx context.Context) ([]*T, error)
		Create(ctx context.Context, v *T) (*T, error)
		Update(ctx context.Context, id int64, v *T) (*T, error)
		Delete(ctx context.Context, id int64) error
	}

	RatingService interface {
		GetByID(ctx context.Context, id string) (*models.Rating, error)
		GetAll(ctx context.Context) ([]*models.Rating, error)
		ListByProduct(ctx context.Context, productID int64) ([]*models.Rating, error)
		Create(ctx context.Context, userID string, in services.RatingInput) (*models.Rating, error)
		Update(ctx context.Context, id string, userID string, in services.RatingInput) (*models.Rating, error)
		Delete(ctx context.Context, id string) error
	}

	OrderService interface {
		GetByID(ctx context.Context, id string) (*models.Order, error)
		GetAll(ctx context.Context) ([]*models.Order, error)
		ListByUser(ctx context.Context, userID string) ([]*models.Order, error)
		Create(ctx context.Context, userID string, items []services.OrderItemInput) (*models.Order, error)
		UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error)
		Delete(ctx context.Context, id string) error
	}
)
