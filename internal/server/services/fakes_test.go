package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/assets"
	"github.com/dmitrijs2005/storekeeper/internal/server/cache"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/categories"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/orders"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/products"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/suppliers"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

// recorder collects the side effects of one test in call order.
type recorder struct {
	mu  sync.Mutex
	ops []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

// --- repositories ---

type fakeUsers struct {
	byName map[string]*models.User
	roles  map[string][]string

	getErr    error
	updateErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byName: map[string]*models.User{}, roles: map[string][]string{}}
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	cp := *u
	cp.ID = fmt.Sprintf("u-%d", len(f.byName)+1)
	cp.CreatedAt = t0
	f.byName[cp.UserName] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUsers) GetUserByLogin(_ context.Context, name string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetRoles(_ context.Context, userID string) ([]string, error) {
	return append([]string(nil), f.roles[userID]...), nil
}

func (f *fakeUsers) AddRole(_ context.Context, userID, role string) error {
	for _, r := range f.roles[userID] {
		if r == role {
			return nil
		}
	}
	f.roles[userID] = append(f.roles[userID], role)
	sort.Strings(f.roles[userID])
	return nil
}

func (f *fakeUsers) UpdateRefreshToken(_ context.Context, userID, token string, expiry time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, u := range f.byName {
		if u.ID == userID {
			u.RefreshToken = token
			u.RefreshTokenExpiry = expiry
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeUsers) FindByRefreshToken(_ context.Context, token string, expiry time.Time) (*models.User, error) {
	for _, u := range f.byName {
		if u.RefreshToken == token && u.RefreshTokenExpiry.Equal(expiry) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeProducts struct {
	rec    *recorder
	rows   map[int64]models.Product
	nextID int64
	reads  int
}

func newFakeProducts(rec *recorder) *fakeProducts {
	return &fakeProducts{rec: rec, rows: map[int64]models.Product{}}
}

func (f *fakeProducts) put(p models.Product) {
	f.rows[p.ID] = p
	if p.ID > f.nextID {
		f.nextID = p.ID
	}
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*models.Product, error) {
	f.reads++
	p, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (f *fakeProducts) GetDetailed(ctx context.Context, id int64) (*models.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProducts) List(context.Context) ([]*models.Product, error) {
	var out []*models.Product
	for id := int64(1); id <= f.nextID; id++ {
		if p, ok := f.rows[id]; ok {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Create(_ context.Context, p *models.Product) (*models.Product, error) {
	f.nextID++
	p.ID = f.nextID
	p.CreatedAt, p.UpdatedAt = t0, t0
	f.rows[p.ID] = *p
	f.rec.add("db.insert:%s:%s", p.Name, p.Images)
	return p, nil
}

func (f *fakeProducts) Update(_ context.Context, p *models.Product) error {
	if _, ok := f.rows[p.ID]; !ok {
		return common.ErrorNotFound
	}
	f.rows[p.ID] = *p
	f.rec.add("db.update:%d:%s", p.ID, p.Images)
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.rows, id)
	f.rec.add("db.delete:%d", id)
	return nil
}

func (f *fakeProducts) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

// fakeCatalog stores categories or suppliers.
type fakeCatalog[T any] struct {
	rec    *recorder
	id     func(*T) int64
	setID  func(*T, int64)
	rows   map[int64]T
	nextID int64
	reads  int
}

func newFakeCatalog[T any](rec *recorder, id func(*T) int64, setID func(*T, int64)) *fakeCatalog[T] {
	return &fakeCatalog[T]{rec: rec, id: id, setID: setID, rows: map[int64]T{}}
}

func (f *fakeCatalog[T]) GetByID(_ context.Context, id int64) (*T, error) {
	f.reads++
	v, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &v, nil
}

func (f *fakeCatalog[T]) List(context.Context) ([]*T, error) {
	var out []*T
	for id := int64(1); id <= f.nextID; id++ {
		if v, ok := f.rows[id]; ok {
			out = append(out, &v)
		}
	}
	return out, nil
}

func (f *fakeCatalog[T]) Create(_ context.Context, v *T) (*T, error) {
	f.nextID++
	f.setID(v, f.nextID)
	f.rows[f.nextID] = *v
	return v, nil
}

func (f *fakeCatalog[T]) Update(_ context.Context, v *T) error {
	id := f.id(v)
	if _, ok := f.rows[id]; !ok {
		return common.ErrorNotFound
	}
	f.rows[id] = *v
	f.rec.add("db.update:%d", id)
	return nil
}

func (f *fakeCatalog[T]) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.rows, id)
	f.rec.add("db.delete:%d", id)
	return nil
}

func (f *fakeCatalog[T]) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

type fakeRatings struct {
	rec   *recorder
	rows  map[string]models.Rating
	reads int
}

func (f *fakeRatings) GetByID(_ context.Context, id string) (*models.Rating, error) {
	f.reads++
	r, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &r, nil
}

func (f *fakeRatings) List(context.Context) ([]*models.Rating, error) {
	var out []*models.Rating
	for _, r := range f.rows {
		out = append(out, &r)
	}
	return out, nil
}

func (f *fakeRatings) ListByProduct(_ context.Context, productID int64) ([]*models.Rating, error) {
	var out []*models.Rating
	for _, r := range f.rows {
		if r.ProductID == productID {
			out = append(out, &r)
		}
	}
	return out, nil
}

func (f *fakeRatings) Create(_ context.Context, r *models.Rating) (*models.Rating, error) {
	r.CreatedAt = t0
	f.rows[r.ID] = *r
	return r, nil
}

func (f *fakeRatings) Update(_ context.Context, r *models.Rating) error {
	if _, ok := f.rows[r.ID]; !ok {
		return common.ErrorNotFound
	}
	f.rows[r.ID] = *r
	f.rec.add("db.update:%s", r.ID)
	return nil
}

func (f *fakeRatings) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.rows, id)
	f.rec.add("db.delete:%s", id)
	return nil
}

func (f *fakeRatings) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

type fakeOrders struct {
	rec       *recorder
	rows      map[string]models.Order
	reads     int
	createErr error
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*models.Order, error) {
	f.reads++
	o, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &o, nil
}

func (f *fakeOrders) List(context.Context) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.rows {
		out = append(out, &o)
	}
	return out, nil
}

func (f *fakeOrders) ListByUser(_ context.Context, userID string) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.rows {
		if o.UserID == userID {
			out = append(out, &o)
		}
	}
	return out, nil
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order) (*models.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	o.CreatedAt, o.UpdatedAt = t0, t0
	f.rows[o.ID] = *o
	return o, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := f.rows[id]
	if !ok {
		return common.ErrorNotFound
	}
	o.Status = status
	f.rows[id] = o
	f.rec.add("db.update:%s", id)
	return nil
}

func (f *fakeOrders) Delete(_ context.Context, id string) error {
	if _, ok := f.rows[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.rows, id)
	f.rec.add("db.delete:%s", id)
	return nil
}

func (f *fakeOrders) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeOrders) HasProduct(_ context.Context, productID int64) (bool, error) {
	for _, o := range f.rows {
		for _, it := range o.Items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeRepoManager struct {
	users      *fakeUsers
	products   *fakeProducts
	categories *fakeCatalog[models.Category]
	suppliers  *fakeCatalog[models.Supplier]
	ratings    *fakeRatings
	orders     *fakeOrders
}

func newFakeRepoManager(rec *recorder) *fakeRepoManager {
	return &fakeRepoManager{
		users:    newFakeUsers(),
		products: newFakeProducts(rec),
		categories: newFakeCatalog(rec,
			func(c *models.Category) int64 { return c.ID },
			func(c *models.Category, id int64) { c.ID = id }),
		suppliers: newFakeCatalog(rec,
			func(s *models.Supplier) int64 { return s.ID },
			func(s *models.Supplier, id int64) { s.ID = id }),
		ratings: &fakeRatings{rec: rec, rows: map[string]models.Rating{}},
		orders:  &fakeOrders{rec: rec, rows: map[string]models.Order{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error  { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }
func (m *fakeRepoManager) Products(dbx.DBTX) products.Repository       { return m.products }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository   { return m.categories }
func (m *fakeRepoManager) Suppliers(dbx.DBTX) suppliers.Repository     { return m.suppliers }
func (m *fakeRepoManager) Ratings(dbx.DBTX) ratings.Repository         { return m.ratings }
func (m *fakeRepoManager) Orders(dbx.DBTX) orders.Repository           { return m.orders }

// --- cache and bucket ---

// recordingStore logs writes and removals on top of an in-memory store.
type recordingStore struct {
	*cache.MemoryStore
	rec *recorder
}

func (s recordingStore) Set(ctx context.Context, key string, v []byte, opts cache.EntryOptions) error {
	s.rec.add("cache.set:%s", key)
	return s.MemoryStore.Set(ctx, key, v, opts)
}

func (s recordingStore) Remove(ctx context.Context, key string) error {
	s.rec.add("cache.remove:%s", key)
	return s.MemoryStore.Remove(ctx, key)
}

func newTestCache(rec *recorder) *cache.Cache {
	store := recordingStore{MemoryStore: cache.NewMemoryStore(timex.NewManualClock(t0)), rec: rec}
	return cache.New(store, cache.EntryOptions{Sliding: time.Minute, Absolute: time.Hour}, nil, logging.Nop())
}

type fakeAssets struct {
	rec     *recorder
	objects map[string][]byte
	failAdd bool
	failDel bool
}

func newFakeAssets(rec *recorder) *fakeAssets {
	return &fakeAssets{rec: rec, objects: map[string][]byte{}}
}

func (a *fakeAssets) AddImageToBucket(_ context.Context, file assets.Upload, path string) bool {
	a.rec.add("bucket.add:%s", path)
	if a.failAdd {
		return false
	}
	a.objects[path] = file.Content
	return true
}

func (a *fakeAssets) DeleteImageFromBucket(_ context.Context, path string) bool {
	a.rec.add("bucket.delete:%s", path)
	if a.failDel {
		return false
	}
	delete(a.objects, path)
	return true
}

func (a *fakeAssets) ImageURL(_ context.Context, path string) (string, bool) {
	if _, ok := a.objects[path]; !ok {
		return "", false
	}
	return "https://bucket.test/" + path, true
}

// newTxDB returns a sqlmock DB for services that open transactions.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}
