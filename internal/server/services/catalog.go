package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/cache"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/repomanager"
)

// catalogRepository is the shape shared by the category and supplier repositories.
type catalogRepository[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, v *T) (*T, error)
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// CatalogService is the cached CRUD service for flat catalog entities
// identified by an int64 id.
type CatalogService[T any] struct {
	entity string
	db     *sql.DB
	repo   func(db dbx.DBTX) catalogRepository[T]
	setID  func(v *T, id int64)
	cache  *cache.Cache
	logger logging.Logger
}

type (
	CategoryService = CatalogService[models.Category]
	SupplierService = CatalogService[models.Supplier]
)

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, logger logging.Logger) *CategoryService {
	return &CatalogService[models.Category]{
		entity: "Category",
		db:     db,
		repo:   func(db dbx.DBTX) catalogRepository[models.Category] { return m.Categories(db) },
		setID:  func(v *models.Category, id int64) { v.ID = id },
		cache:  c,
		logger: logger.With("module", "categories"),
	}
}

func NewSupplierService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, logger logging.Logger) *SupplierService {
	return &CatalogService[models.Supplier]{
		entity: "Supplier",
		db:     db,
		repo:   func(db dbx.DBTX) catalogRepository[models.Supplier] { return m.Suppliers(db) },
		setID:  func(v *models.Supplier, id int64) { v.ID = id },
		cache:  c,
		logger: logger.With("module", "suppliers"),
	}
}

func (s *CatalogService[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return readThrough(ctx, s.cache, cache.Key(s.entity, id), func(ctx context.Context) (*T, error) {
		return s.repo(s.db).GetByID(ctx, id)
	})
}

func (s *CatalogService[T]) GetAll(ctx context.Context) ([]*T, error) {
	return s.repo(s.db).List(ctx)
}

func (s *CatalogService[T]) Create(ctx context.Context, v *T) (*T, error) {
	if err := validateStruct(v); err != nil {
		return nil, err
	}
	s.setID(v, 0)
	return s.repo(s.db).Create(ctx, v)
}

// Update writes v under id and drops the cache entry afterwards.
func (s *CatalogService[T]) Update(ctx context.Context, id int64, v *T) (*T, error) {
	if err := validateStruct(v); err != nil {
		return nil, err
	}

	repo := s.repo(s.db)
	if err := s.mustExist(ctx, repo, id); err != nil {
		return nil, err
	}

	s.setID(v, id)
	if err := repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.cache.Remove(ctx, cache.Key(s.entity, id))
	return v, nil
}

func (s *CatalogService[T]) Delete(ctx context.Context, id int64) error {
	repo := s.repo(s.db)
	if err := s.mustExist(ctx, repo, id); err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(ctx, cache.Key(s.entity, id))
	return nil
}

func (s *CatalogService[T]) mustExist(ctx context.Context, repo catalogRepository[T], id int64) error {
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
