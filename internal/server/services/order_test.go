package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*OrderService, *fakeRepoManager, *recorder, sqlmock.Sqlmock) {
	t.Helper()
	rec := &recorder{}
	rm := newFakeRepoManager(rec)
	rm.products.put(models.Product{ID: 1, Name: "Lamp", Price: 10.10})
	rm.products.put(models.Product{ID: 2, Name: "Bulb", Price: 2.35})
	db, mock := newTxDB(t)
	return NewOrderService(db, rm, newTestCache(rec), timex.NewManualClock(t0), logging.Nop()), rm, rec, mock
}

func TestOrderCreate_PricesFromProducts(t *testing.T) {
	svc, rm, _, mock := newOrderFixture(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	o, err := svc.Create(context.Background(), "u-1", []OrderItemInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
		{ProductID: 1, Quantity: 1},
	})
	require.NoError(t, err)

	id, err := ulid.ParseStrict(o.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(t0), id.Time())

	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, []models.OrderItem{
		{ProductID: 1, Quantity: 3, UnitPrice: 10.10},
		{ProductID: 2, Quantity: 3, UnitPrice: 2.35},
	}, o.Items)
	assert.Equal(t, 37.35, o.Total)
	assert.Contains(t, rm.orders.rows, o.ID)
}

func TestOrderCreate_UnknownProductRollsBack(t *testing.T) {
	svc, rm, _, mock := newOrderFixture(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), "u-1", []OrderItemInput{{ProductID: 1, Quantity: 1}, {ProductID: 77, Quantity: 1}})
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, rm.orders.rows)
}

func TestOrderCreate_InsertFailureRollsBack(t *testing.T) {
	svc, rm, _, mock := newOrderFixture(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	rm.orders.createErr = errors.New("db down")

	_, err := svc.Create(context.Background(), "u-1", []OrderItemInput{{ProductID: 1, Quantity: 1}})
	assert.EqualError(t, err, "db down")
}

func TestOrderCreate_Validation(t *testing.T) {
	svc, _, _, _ := newOrderFixture(t)

	_, err := svc.Create(context.Background(), "u-1", nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = svc.Create(context.Background(), "u-1", []OrderItemInput{{ProductID: 1, Quantity: 0}})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestOrderStatusAndDelete(t *testing.T) {
	svc, rm, rec, _ := newOrderFixture(t)
	ctx := context.Background()
	id := ulid.Make().String()
	rm.orders.rows[id] = models.Order{ID: id, UserID: "u-1", Status: models.OrderStatusPending}

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, got.Status)

	_, err = svc.UpdateStatus(ctx, id, "lost")
	assert.ErrorIs(t, err, common.ErrorValidation)

	updated, err := svc.UpdateStatus(ctx, id, models.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	got, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, got.Status, "status change invalidated the cache")

	require.NoError(t, svc.Delete(ctx, id))
	assert.Equal(t, []string{
		"cache.set:OrderId=" + id,
		"db.update:" + id,
		"cache.remove:OrderId=" + id,
		"cache.set:OrderId=" + id,
		"db.delete:" + id,
		"cache.remove:OrderId=" + id,
	}, rec.list())

	_, err = svc.UpdateStatus(ctx, id, models.OrderStatusPaid)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "bogus"), common.ErrorNotFound)
}

func TestOrderListByUser(t *testing.T) {
	svc, rm, _, _ := newOrderFixture(t)
	rm.orders.rows["a"] = models.Order{ID: "a", UserID: "u-1"}
	rm.orders.rows["b"] = models.Order{ID: "b", UserID: "u-2"}

	list, err := svc.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].ID)

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
