package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/assets"
	"github.com/dmitrijs2005/storekeeper/internal/server/cache"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/repomanager"
)

const productEntity = "Product"

type ProductInput struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=4000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  *int64  `json:"category_id,omitempty" validate:"omitnil,gt=0"`
	SupplierID  *int64  `json:"supplier_id,omitempty" validate:"omitnil,gt=0"`
}

// ProductService manages products and their images. The database row and
// the bucket object are kept in step on a best-effort basis: a failed
// bucket call is logged and the row is written without the image.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *cache.Cache
	assets      AssetStore
	logger      logging.Logger
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, a AssetStore, logger logging.Logger) *ProductService {
	return &ProductService{
		db:          db,
		repomanager: m,
		cache:       c,
		assets:      a,
		logger:      logger.With("module", "products"),
	}
}

// GetByID returns the product with its category and supplier.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return readThrough(ctx, s.cache, cache.Key(productEntity, id), func(ctx context.Context) (*models.Product, error) {
		return s.repomanager.Products(s.db).GetDetailed(ctx, id)
	})
}

func (s *ProductService) GetAll(ctx context.Context) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).List(ctx)
}

// Create uploads the image, when given, then inserts the row.
func (s *ProductService) Create(ctx context.Context, in ProductInput, image *assets.Upload) (*models.Product, error) {
	if err := s.checkInput(ctx, in); err != nil {
		return nil, err
	}

	p := &models.Product{}
	applyInput(p, in)

	if image != nil {
		p.Images = s.upload(ctx, in.Name, *image)
	}

	return s.repomanager.Products(s.db).Create(ctx, p)
}

// Update rewrites the product. With an image, the stored image is deleted
// and the new one uploaded under the (possibly new) name before the row is
// written; without one, the stored image path is kept. The cache entry is
// dropped after the write.
func (s *ProductService) Update(ctx context.Context, id int64, in ProductInput, image *assets.Upload) (*models.Product, error) {
	if err := s.checkInput(ctx, in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Products(s.db)
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if image != nil {
		if p.Images != "" {
			s.remove(ctx, p.Images)
		}
		p.Images = s.upload(ctx, in.Name, *image)
	}
	applyInput(p, in)

	if err := repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Remove(ctx, cache.Key(productEntity, id))
	return p, nil
}

// Delete removes the image, then the row, then the cache entries. A product
// still referenced by order lines is refused before the bucket is touched.
// Ratings go with the row by cascade, so their cache entries are dropped too.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Products(s.db)
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	ordered, err := s.repomanager.Orders(s.db).HasProduct(ctx, id)
	if err != nil {
		return err
	}
	if ordered {
		return fmt.Errorf("%w: product %d is referenced by orders", common.ErrorConflict, id)
	}

	rated, err := s.repomanager.Ratings(s.db).ListByProduct(ctx, id)
	if err != nil {
		return err
	}

	if p.Images != "" {
		s.remove(ctx, p.Images)
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(ctx, cache.Key(productEntity, id))
	for _, r := range rated {
		s.cache.Remove(ctx, cache.Key(ratingEntity, r.ID))
	}
	return nil
}

// ImageURL returns a short-lived download URL for the product image.
func (s *ProductService) ImageURL(ctx context.Context, id int64) (string, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if p.Images == "" {
		return "", common.ErrorNotFound
	}
	url, ok := s.assets.ImageURL(ctx, p.Images)
	if !ok {
		return "", common.ErrAssetOperationFailed
	}
	return url, nil
}

func (s *ProductService) checkInput(ctx context.Context, in ProductInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if in.CategoryID != nil {
		ok, err := s.repomanager.Categories(s.db).Exists(ctx, *in.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: category %d does not exist", common.ErrorValidation, *in.CategoryID)
		}
	}
	if in.SupplierID != nil {
		ok, err := s.repomanager.Suppliers(s.db).Exists(ctx, *in.SupplierID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: supplier %d does not exist", common.ErrorValidation, *in.SupplierID)
		}
	}
	return nil
}

// upload returns the stored path, or "" when the bucket did not take the image.
func (s *ProductService) upload(ctx context.Context, name string, image assets.Upload) string {
	path := assets.ImagePath(name, image.FileName)
	if !s.assets.AddImageToBucket(ctx, image, path) {
		s.logger.Warn(ctx, "continuing without image", "path", path, "error", common.ErrAssetOperationFailed)
		return ""
	}
	return path
}

func (s *ProductService) remove(ctx context.Context, path string) {
	if !s.assets.DeleteImageFromBucket(ctx, path) {
		s.logger.Warn(ctx, "image left in bucket", "path", path, "error", common.ErrAssetOperationFailed)
	}
}

func applyInput(p *models.Product, in ProductInput) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.CategoryID = in.CategoryID
	p.SupplierID = in.SupplierID
}
