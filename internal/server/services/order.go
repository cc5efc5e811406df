package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/cache"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
	"github.com/oklog/ulid/v2"
)

const orderEntity = "Order"

type OrderItemInput struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
	Quantity  int   `json:"quantity" validate:"gt=0,lte=1000"`
}

type orderInput struct {
	Items []OrderItemInput `validate:"required,min=1,max=100,dive"`
}

type statusInput struct {
	Status string `validate:"oneof=pending paid shipped delivered cancelled"`
}

type OrderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *cache.Cache
	clock       timex.Clock
	logger      logging.Logger
}

func NewOrderService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, clock timex.Clock, logger logging.Logger) *OrderService {
	return &OrderService{db: db, repomanager: m, cache: c, clock: clock, logger: logger.With("module", "orders")}
}

// GetByID returns the order with its items.
func (s *OrderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if _, err := ulid.ParseStrict(id); err != nil {
		return nil, common.ErrorNotFound
	}
	return readThrough(ctx, s.cache, cache.Key(orderEntity, id), func(ctx context.Context) (*models.Order, error) {
		return s.repomanager.Orders(s.db).GetByID(ctx, id)
	})
}

func (s *OrderService) GetAll(ctx context.Context) ([]*models.Order, error) {
	return s.repomanager.Orders(s.db).List(ctx)
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	return s.repomanager.Orders(s.db).ListByUser(ctx, userID)
}

// Create places a pending order for userID. Unit prices are taken from the
// products at the time of the call; lines for the same product are merged.
// Price lookups and inserts share one transaction.
func (s *OrderService) Create(ctx context.Context, userID string, items []OrderItemInput) (*models.Order, error) {
	if err := validateStruct(orderInput{Items: items}); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	order := &models.Order{
		ID:     ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		UserID: userID,
		Status: models.OrderStatusPending,
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		products := s.repomanager.Products(tx)

		var total float64
		for _, it := range mergeItems(items) {
			p, err := products.GetByID(ctx, it.ProductID)
			if err != nil {
				if errors.Is(err, common.ErrorNotFound) {
					return fmt.Errorf("%w: product %d does not exist", common.ErrorValidation, it.ProductID)
				}
				return err
			}
			order.Items = append(order.Items, models.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: p.Price,
			})
			total += p.Price * float64(it.Quantity)
		}
		order.Total = math.Round(total*100) / 100

		_, err := s.repomanager.Orders(tx).Create(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "order placed", "order", order.ID, "user", userID, "total", order.Total)
	return order, nil
}

// UpdateStatus moves the order to status and drops the cache entry.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	if err := validateStruct(statusInput{Status: status}); err != nil {
		return nil, err
	}
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repomanager.Orders(s.db).UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	s.cache.Remove(ctx, cache.Key(orderEntity, id))
	return s.repomanager.Orders(s.db).GetByID(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	if err := s.repomanager.Orders(s.db).Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Remove(ctx, cache.Key(orderEntity, id))
	return nil
}

func (s *OrderService) mustExist(ctx context.Context, id string) error {
	if _, err := ulid.ParseStrict(id); err != nil {
		return common.ErrorNotFound
	}
	ok, err := s.repomanager.Orders(s.db).Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}

func mergeItems(items []OrderItemInput) []OrderItemInput {
	idx := make(map[int64]int, len(items))
	var out []OrderItemInput
	for _, it := range items {
		if i, ok := idx[it.ProductID]; ok {
			out[i].Quantity += it.Quantity
			continue
		}
		idx[it.ProductID] = len(out)
		out = append(out, it)
	}
	return out
}
