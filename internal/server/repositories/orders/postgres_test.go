package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

var (
	columns = []string{"id", "user_id", "status", "total", "created_at", "updated_at"}
	ts      = time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
)

func TestGetByID_WithItems(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs("o-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("o-1", "u-1", "pending", 25.0, ts, ts))
	mock.ExpectQuery(`FROM order_items WHERE order_id = \$1`).
		WithArgs("o-1").
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "unit_price"}).
			AddRow(int64(1), int64(2), 10.0).
			AddRow(int64(2), int64(1), 5.0))

	o, err := repo.GetByID(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", o.Status)
	assert.Equal(t, []models.OrderItem{
		{ProductID: 1, Quantity: 2, UnitPrice: 10},
		{ProductID: 2, Quantity: 1, UnitPrice: 5},
	}, o.Items)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).WithArgs("o-1").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), "o-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreate_InsertsItems(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)INSERT INTO orders.*RETURNING created_at, updated_at`).
		WithArgs("o-1", "u-1", "pending", 25.0).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(ts, ts))
	mock.ExpectExec(`INSERT INTO order_items`).WithArgs("o-1", int64(1), 2, 10.0).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO order_items`).WithArgs("o-1", int64(2), 1, 5.0).WillReturnResult(sqlmock.NewResult(0, 1))

	o, err := repo.Create(context.Background(), &models.Order{
		ID: "o-1", UserID: "u-1", Status: "pending", Total: 25,
		Items: []models.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 10}, {ProductID: 2, Quantity: 1, UnitPrice: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, ts, o.CreatedAt)
}

func TestCreate_ItemError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(ts, ts))
	mock.ExpectExec(`INSERT INTO order_items`).WillReturnError(errors.New("fk violation"))

	_, err := repo.Create(context.Background(), &models.Order{
		ID: "o-1", UserID: "u-1", Status: "pending",
		Items: []models.OrderItem{{ProductID: 99, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error")
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM orders WHERE user_id = \$1`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("o-1", "u-1", "paid", 1.0, ts, ts))

	list, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "paid", list[0].Status)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`UPDATE orders SET status = \$2`).WithArgs("o-1", "shipped").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE orders SET status = \$2`).WithArgs("o-2", "shipped").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.UpdateStatus(context.Background(), "o-1", "shipped"))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), "o-2", "shipped"), common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`DELETE FROM orders WHERE id = \$1`).WithArgs("o-1").WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "o-1"))
}

func TestHasProduct(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM order_items WHERE product_id = \$1\)`).WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`FROM order_items`).WithArgs(int64(8)).
		WillReturnError(errors.New("conn reset"))

	ok, err := repo.HasProduct(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.HasProduct(context.Background(), 8)
	assert.ErrorContains(t, err, "db error")
	require.NoError(t, mock.ExpectationsWereMet())
}
