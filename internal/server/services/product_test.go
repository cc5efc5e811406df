package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/assets"
	"github.com/dmitrijs2005/storekeeper/internal/server/cache"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productFixture struct {
	svc    *ProductService
	rm     *fakeRepoManager
	assets *fakeAssets
	cache  *cache.Cache
	rec    *recorder
}

func newProductFixture() *productFixture {
	rec := &recorder{}
	rm := newFakeRepoManager(rec)
	a := newFakeAssets(rec)
	c := newTestCache(rec)
	return &productFixture{
		svc:    NewProductService(nil, rm, c, a, logging.Nop()),
		rm:     rm,
		assets: a,
		cache:  c,
		rec:    rec,
	}
}

func TestProductGetByID_ReadThrough(t *testing.T) {
	f := newProductFixture()
	f.rm.products.put(models.Product{ID: 5, Name: "Lamp", Price: 10})
	ctx := context.Background()

	p, err := f.svc.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", p.Name)
	assert.Equal(t, 1, f.rm.products.reads)

	// a hit must not touch the repository
	p, err = f.svc.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", p.Name)
	assert.Equal(t, 1, f.rm.products.reads)
	assert.Equal(t, []string{"cache.set:ProductId=5"}, f.rec.list())
}

func TestProductGetByID_NotFoundIsNotCached(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	_, err := f.svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = f.svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.Equal(t, 2, f.rm.products.reads)
	assert.Empty(t, f.rec.list())
}

func TestProductGetAll_BypassesCache(t *testing.T) {
	f := newProductFixture()
	f.rm.products.put(models.Product{ID: 1, Name: "A"})
	f.rm.products.put(models.Product{ID: 2, Name: "B"})

	list, err := f.svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Empty(t, f.rec.list())
}

func TestProductCreate_UploadsThenInserts(t *testing.T) {
	f := newProductFixture()

	p, err := f.svc.Create(context.Background(),
		ProductInput{Name: "Lamp", Price: 12.5, Stock: 3},
		&assets.Upload{FileName: "a.png", Content: []byte("img")})
	require.NoError(t, err)

	assert.Equal(t, "Lamp/a.png", p.Images)
	assert.Equal(t, []string{"bucket.add:Lamp/a.png", "db.insert:Lamp:Lamp/a.png"}, f.rec.list())
	assert.Contains(t, f.assets.objects, "Lamp/a.png")
}

func TestProductCreate_NoCachePrepopulation(t *testing.T) {
	f := newProductFixture()

	p, err := f.svc.Create(context.Background(), ProductInput{Name: "Lamp"}, nil)
	require.NoError(t, err)

	_, ok := cache.Get[*models.Product](context.Background(), f.cache, cache.Key("Product", p.ID))
	assert.False(t, ok)
	assert.Equal(t, "", p.Images)
}

func TestProductCreate_UploadFailureStillInserts(t *testing.T) {
	f := newProductFixture()
	f.assets.failAdd = true

	p, err := f.svc.Create(context.Background(), ProductInput{Name: "Lamp"}, &assets.Upload{FileName: "a.png"})
	require.NoError(t, err)
	assert.Equal(t, "", p.Images)
	assert.Equal(t, []string{"bucket.add:Lamp/a.png", "db.insert:Lamp:"}, f.rec.list())
}

func TestProductCreate_Validation(t *testing.T) {
	f := newProductFixture()
	missing := int64(9)

	_, err := f.svc.Create(context.Background(), ProductInput{Name: ""}, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.Create(context.Background(), ProductInput{Name: "x", Price: -1}, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.Create(context.Background(), ProductInput{Name: "x", CategoryID: &missing}, nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	assert.Empty(t, f.rec.list())
}

func TestProductUpdate_ReplacesImage(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	p, err := f.svc.Create(ctx, ProductInput{Name: "Lamp"}, &assets.Upload{FileName: "a.png", Content: []byte("a")})
	require.NoError(t, err)
	_, err = f.svc.GetByID(ctx, p.ID) // warm the cache
	require.NoError(t, err)
	f.rec.ops = nil

	updated, err := f.svc.Update(ctx, p.ID, ProductInput{Name: "Lamp"}, &assets.Upload{FileName: "b.png", Content: []byte("b")})
	require.NoError(t, err)

	assert.Equal(t, "Lamp/b.png", updated.Images)
	assert.Equal(t, []string{
		"bucket.delete:Lamp/a.png",
		"bucket.add:Lamp/b.png",
		"db.update:1:Lamp/b.png",
		"cache.remove:ProductId=1",
	}, f.rec.list())
	assert.NotContains(t, f.assets.objects, "Lamp/a.png")
	assert.Contains(t, f.assets.objects, "Lamp/b.png")

	got, err := f.svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp/b.png", got.Images)
}

func TestProductUpdate_RenameMovesImagePath(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	p, err := f.svc.Create(ctx, ProductInput{Name: "Lamp"}, &assets.Upload{FileName: "a.png"})
	require.NoError(t, err)
	f.rec.ops = nil

	updated, err := f.svc.Update(ctx, p.ID, ProductInput{Name: "Desk Lamp"}, &assets.Upload{FileName: "a.png"})
	require.NoError(t, err)

	assert.Equal(t, "Desk Lamp/a.png", updated.Images)
	assert.Equal(t, "bucket.delete:Lamp/a.png", f.rec.list()[0])
}

func TestProductUpdate_WithoutImageKeepsPath(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	p, err := f.svc.Create(ctx, ProductInput{Name: "Lamp"}, &assets.Upload{FileName: "a.png"})
	require.NoError(t, err)
	f.rec.ops = nil

	updated, err := f.svc.Update(ctx, p.ID, ProductInput{Name: "Lamp", Price: 99}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Lamp/a.png", updated.Images)
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, []string{"db.update:1:Lamp/a.png", "cache.remove:ProductId=1"}, f.rec.list())
}

func TestProductUpdate_NotFound(t *testing.T) {
	f := newProductFixture()

	_, err := f.svc.Update(context.Background(), 42, ProductInput{Name: "x"}, &assets.Upload{FileName: "a.png"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Empty(t, f.rec.list())
}

func TestProductDelete(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	p, err := f.svc.Create(ctx, ProductInput{Name: "Lamp"}, &assets.Upload{FileName: "a.png"})
	require.NoError(t, err)
	f.rec.ops = nil

	require.NoError(t, f.svc.Delete(ctx, p.ID))
	assert.Equal(t, []string{"bucket.delete:Lamp/a.png", "db.delete:1", "cache.remove:ProductId=1"}, f.rec.list())

	_, err = f.svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, p.ID), common.ErrorNotFound)
}

func TestProductDelete_BucketFailureStillDeletesRow(t *testing.T) {
	f := newProductFixture()
	f.rm.products.put(models.Product{ID: 3, Name: "Lamp", Images: "Lamp/a.png"})
	f.assets.failDel = true

	require.NoError(t, f.svc.Delete(context.Background(), 3))
	assert.NotContains(t, f.rm.products.rows, int64(3))
}

func TestProductDelete_DropsCachedRatings(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()
	f.rm.products.put(models.Product{ID: 4, Name: "Lamp"})
	f.rm.ratings.rows["r-1"] = models.Rating{ID: "r-1", ProductID: 4, UserID: "u-1", Score: 5}
	f.rm.ratings.rows["r-2"] = models.Rating{ID: "r-2", ProductID: 9, UserID: "u-1", Score: 2}

	ratings := NewRatingService(nil, f.rm, f.cache, logging.Nop())
	_, err := ratings.GetByID(ctx, "r-1")
	require.NoError(t, err)
	_, err = ratings.GetByID(ctx, "r-2")
	require.NoError(t, err)
	f.rec.ops = nil

	require.NoError(t, f.svc.Delete(ctx, 4))
	assert.Equal(t, []string{"db.delete:4", "cache.remove:ProductId=4", "cache.remove:RatingId=r-1"}, f.rec.list())

	// the cascade removed the row, and the cache no longer serves it
	delete(f.rm.ratings.rows, "r-1")
	_, err = ratings.GetByID(ctx, "r-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	reads := f.rm.ratings.reads
	_, err = ratings.GetByID(ctx, "r-2")
	require.NoError(t, err)
	assert.Equal(t, reads, f.rm.ratings.reads, "unrelated rating stays cached")
}

func TestProductDelete_ReferencedByOrder(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()
	f.rm.products.put(models.Product{ID: 6, Name: "Lamp", Images: "Lamp/a.png"})
	f.assets.objects["Lamp/a.png"] = []byte{1}
	f.rm.orders.rows["o-1"] = models.Order{ID: "o-1", UserID: "u-1", Items: []models.OrderItem{{ProductID: 6, Quantity: 1}}}
	f.rec.ops = nil

	err := f.svc.Delete(ctx, 6)
	assert.ErrorIs(t, err, common.ErrorConflict)
	assert.Empty(t, f.rec.list(), "neither bucket nor row touched")
	assert.Contains(t, f.assets.objects, "Lamp/a.png")
	assert.Contains(t, f.rm.products.rows, int64(6))
}

func TestProductImageURL(t *testing.T) {
	f := newProductFixture()
	ctx := context.Background()

	p, err := f.svc.Create(ctx, ProductInput{Name: "Lamp"}, &assets.Upload{FileName: "a.png"})
	require.NoError(t, err)
	url, err := f.svc.ImageURL(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.test/Lamp/a.png", url)

	plain, err := f.svc.Create(ctx, ProductInput{Name: "Plain"}, nil)
	require.NoError(t, err)
	_, err = f.svc.ImageURL(ctx, plain.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	f.rm.products.put(models.Product{ID: 10, Name: "Ghost", Images: "Ghost/x.png"})
	_, err = f.svc.ImageURL(ctx, 10)
	assert.ErrorIs(t, err, common.ErrAssetOperationFailed)
}
