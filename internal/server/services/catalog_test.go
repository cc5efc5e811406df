package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Lifecycle(t *testing.T) {
	rec := &recorder{}
	rm := newFakeRepoManager(rec)
	svc := NewCategoryService(nil, rm, newTestCache(rec), logging.Nop())
	ctx := context.Background()

	c, err := svc.Create(ctx, &models.Category{Name: "Tools"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	assert.Empty(t, rec.list(), "create does not touch the cache")

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tools", got.Name)
	_, err = svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rm.categories.reads)

	updated, err := svc.Update(ctx, c.ID, &models.Category{Name: "Hand tools"})
	require.NoError(t, err)
	assert.Equal(t, c.ID, updated.ID)

	got, err = svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hand tools", got.Name)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.Equal(t, []string{
		"cache.set:CategoryId=1",
		"db.update:1",
		"cache.remove:CategoryId=1",
		"cache.set:CategoryId=1",
		"db.delete:1",
		"cache.remove:CategoryId=1",
	}, rec.list())
}

func TestCategoryService_NotFoundAndValidation(t *testing.T) {
	rec := &recorder{}
	svc := NewCategoryService(nil, newFakeRepoManager(rec), newTestCache(rec), logging.Nop())
	ctx := context.Background()

	_, err := svc.Update(ctx, 7, &models.Category{Name: "x"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 7), common.ErrorNotFound)

	_, err = svc.Create(ctx, &models.Category{})
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.Empty(t, rec.list())
}

func TestSupplierService(t *testing.T) {
	rec := &recorder{}
	rm := newFakeRepoManager(rec)
	svc := NewSupplierService(nil, rm, newTestCache(rec), logging.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.Supplier{Name: "Acme", ContactEmail: "not-an-email"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	s, err := svc.Create(ctx, &models.Supplier{Name: "Acme", ContactEmail: "sales@acme.test"})
	require.NoError(t, err)

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := svc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "sales@acme.test", got.ContactEmail)
	assert.Equal(t, []string{"cache.set:SupplierId=1"}, rec.list())
}
