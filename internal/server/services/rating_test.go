package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatingFixture() (*RatingService, *fakeRepoManager, *recorder) {
	rec := &recorder{}
	rm := newFakeRepoManager(rec)
	rm.products.put(models.Product{ID: 3, Name: "Lamp"})
	return NewRatingService(nil, rm, newTestCache(rec), logging.Nop()), rm, rec
}

func TestRatingCreate(t *testing.T) {
	svc, rm, _ := newRatingFixture()
	ctx := context.Background()

	r, err := svc.Create(ctx, "u-1", RatingInput{ProductID: 3, Score: 4, Comment: "solid"})
	require.NoError(t, err)
	_, err = uuid.Parse(r.ID)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", r.UserID)
	assert.Contains(t, rm.ratings.rows, r.ID)

	_, err = svc.Create(ctx, "u-1", RatingInput{ProductID: 99, Score: 4})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = svc.Create(ctx, "u-1", RatingInput{ProductID: 3, Score: 6})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRatingGetByID_CachedAndBadID(t *testing.T) {
	svc, rm, _ := newRatingFixture()
	ctx := context.Background()

	r, err := svc.Create(ctx, "u-1", RatingInput{ProductID: 3, Score: 5})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := svc.GetByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Score)
	}
	assert.Equal(t, 1, rm.ratings.reads)

	_, err = svc.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRatingUpdate(t *testing.T) {
	svc, _, rec := newRatingFixture()
	ctx := context.Background()

	r, err := svc.Create(ctx, "u-1", RatingInput{ProductID: 3, Score: 5})
	require.NoError(t, err)
	_, err = svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	rec.ops = nil

	_, err = svc.Update(ctx, r.ID, "u-2", RatingInput{ProductID: 3, Score: 1})
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = svc.Update(ctx, r.ID, "u-1", RatingInput{ProductID: 4, Score: 1})
	assert.ErrorIs(t, err, common.ErrorValidation)

	updated, err := svc.Update(ctx, r.ID, "u-1", RatingInput{ProductID: 3, Score: 2, Comment: "faded"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Score)
	assert.Equal(t, []string{"db.update:" + r.ID, "cache.remove:RatingId=" + r.ID}, rec.list())

	got, err := svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "faded", got.Comment)

	_, err = svc.Update(ctx, uuid.NewString(), "u-1", RatingInput{ProductID: 3, Score: 2})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRatingDeleteAndList(t *testing.T) {
	svc, _, rec := newRatingFixture()
	ctx := context.Background()

	r1, err := svc.Create(ctx, "u-1", RatingInput{ProductID: 3, Score: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u-2", RatingInput{ProductID: 3, Score: 3})
	require.NoError(t, err)

	list, err := svc.ListByProduct(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.Delete(ctx, r1.ID))
	assert.Equal(t, []string{"db.delete:" + r1.ID, "cache.remove:RatingId=" + r1.ID}, rec.list())
	assert.ErrorIs(t, svc.Delete(ctx, r1.ID), common.ErrorNotFound)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
