package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/cache"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const ratingEntity = "Rating"

type RatingInput struct {
	ProductID int64  `json:"product_id" validate:"gt=0"`
	Score     int    `json:"score" validate:"min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

type RatingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *cache.Cache
	logger      logging.Logger
}

func NewRatingService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, logger logging.Logger) *RatingService {
	return &RatingService{db: db, repomanager: m, cache: c, logger: logger.With("module", "ratings")}
}

func (s *RatingService) GetByID(ctx context.Context, id string) (*models.Rating, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return readThrough(ctx, s.cache, cache.Key(ratingEntity, id), func(ctx context.Context) (*models.Rating, error) {
		return s.repomanager.Ratings(s.db).GetByID(ctx, id)
	})
}

func (s *RatingService) GetAll(ctx context.Context) ([]*models.Rating, error) {
	return s.repomanager.Ratings(s.db).List(ctx)
}

func (s *RatingService) ListByProduct(ctx context.Context, productID int64) ([]*models.Rating, error) {
	return s.repomanager.Ratings(s.db).ListByProduct(ctx, productID)
}

// Create stores a rating by userID for an existing product.
func (s *RatingService) Create(ctx context.Context, userID string, in RatingInput) (*models.Rating, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := s.productExists(ctx, in.ProductID); err != nil {
		return nil, err
	}

	r := &models.Rating{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		UserID:    userID,
		Score:     in.Score,
		Comment:   in.Comment,
	}
	return s.repomanager.Ratings(s.db).Create(ctx, r)
}

// Update changes score and comment. Only the author may update a rating;
// the product it belongs to cannot change.
func (s *RatingService) Update(ctx context.Context, id string, userID string, in RatingInput) (*models.Rating, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	repo := s.repomanager.Ratings(s.db)
	r, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, common.ErrorForbidden
	}
	if in.ProductID != r.ProductID {
		return nil, fmt.Errorf("%w: a rating cannot move to another product", common.ErrorValidation)
	}

	r.Score = in.Score
	r.Comment = in.Comment
	if err := repo.Update(ctx, r); err != nil {
		return nil, err
	}
	s.cache.Remove(ctx, cache.Key(ratingEntity, id))
	return r, nil
}

func (s *RatingService) Delete(ctx context.Context, id string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repomanager.Ratings(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(ctx, cache.Key(ratingEntity, id))
	return nil
}

// find reads the row directly, bypassing the cache.
func (s *RatingService) find(ctx context.Context, id string) (*models.Rating, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return s.repomanager.Ratings(s.db).GetByID(ctx, id)
}

func (s *RatingService) productExists(ctx context.Context, productID int64) error {
	ok, err := s.repomanager.Products(s.db).Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: product %d", common.ErrorNotFound, productID)
	}
	return nil
}
