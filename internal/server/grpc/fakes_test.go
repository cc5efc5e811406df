package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/assets"
	"github.com/dmitrijs2005/storekeeper/internal/server/auth"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/services"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeUsers struct {
	pair      *services.TokenPair
	err       error
	gotName   string
	gotPass   string
	gotExpiry time.Time
}

func (f *fakeUsers) Register(_ context.Context, userName, password string, roles []string) (*models.User, error) {
	f.gotName, f.gotPass = userName, password
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: "u-1", UserName: userName, Roles: []string{common.RoleCustomer}}, nil
}

func (f *fakeUsers) Login(_ context.Context, userName, password string) (*services.TokenPair, error) {
	f.gotName, f.gotPass = userName, password
	return f.pair, f.err
}

func (f *fakeUsers) Refresh(_ context.Context, token string, expiry time.Time) (*services.TokenPair, error) {
	f.gotName, f.gotExpiry = token, expiry
	return f.pair, f.err
}

type fakeProducts struct {
	items     map[int64]*models.Product
	err       error
	deleteErr error
	gotInput  services.ProductInput
	gotImage  *assets.Upload
	deleted   []int64
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakeProducts) GetAll(context.Context) ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, f.err
}

func (f *fakeProducts) Create(_ context.Context, in services.ProductInput, image *assets.Upload) (*models.Product, error) {
	f.gotInput, f.gotImage = in, image
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{ID: 10, Name: in.Name, Price: in.Price}, nil
}

func (f *fakeProducts) Update(_ context.Context, id int64, in services.ProductInput, image *assets.Upload) (*models.Product, error) {
	f.gotInput, f.gotImage = in, image
	if _, ok := f.items[id]; !ok {
		return nil, common.ErrorNotFound
	}
	return &models.Product{ID: id, Name: in.Name}, nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProducts) ImageURL(_ context.Context, id int64) (string, error) {
	if _, ok := f.items[id]; !ok {
		return "", common.ErrorNotFound
	}
	return "https://bucket.local/p.png?sig=1", nil
}

type fakeCatalog[T any] struct {
	items map[int64]*T
	err   error
}

func (f *fakeCatalog[T]) GetByID(_ context.Context, id int64) (*T, error) {
	v, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return v, nil
}

func (f *fakeCatalog[T]) GetAll(context.Context) ([]*T, error) {
	out := make([]*T, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, v)
	}
	return out, f.err
}

func (f *fakeCatalog[T]) Create(_ context.Context, v *T) (*T, error) {
	if f.err != nil {
		return nil, f.err
	}
	return v, nil
}

func (f *fakeCatalog[T]) Update(_ context.Context, id int64, v *T) (*T, error) {
	if _, ok := f.items[id]; !ok {
		return nil, common.ErrorNotFound
	}
	return v, nil
}

func (f *fakeCatalog[T]) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeRatings struct {
	items      map[string]*models.Rating
	deleted    []string
	byProduct  int64
	updateUser string
}

func (f *fakeRatings) GetByID(_ context.Context, id string) (*models.Rating, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r, nil
}

func (f *fakeRatings) GetAll(context.Context) ([]*models.Rating, error) {
	out := make([]*models.Rating, 0, len(f.items))
	for _, r := range f.items {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRatings) ListByProduct(_ context.Context, productID int64) ([]*models.Rating, error) {
	f.byProduct = productID
	var out []*models.Rating
	for _, r := range f.items {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatings) Create(_ context.Context, userID string, in services.RatingInput) (*models.Rating, error) {
	return &models.Rating{ID: "r-new", ProductID: in.ProductID, UserID: userID, Score: in.Score}, nil
}

func (f *fakeRatings) Update(_ context.Context, id string, userID string, in services.RatingInput) (*models.Rating, error) {
	f.updateUser = userID
	r, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if r.UserID != userID {
		return nil, common.ErrorForbidden
	}
	return &models.Rating{ID: id, ProductID: r.ProductID, UserID: userID, Score: in.Score}, nil
}

func (f *fakeRatings) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeOrders struct {
	items     map[string]*models.Order
	createErr error
	gotUser   string
	gotItems  []services.OrderItemInput
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return o, nil
}

func (f *fakeOrders) GetAll(context.Context) ([]*models.Order, error) {
	out := make([]*models.Order, 0, len(f.items))
	for _, o := range f.items {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrders) ListByUser(_ context.Context, userID string) ([]*models.Order, error) {
	f.gotUser = userID
	var out []*models.Order
	for _, o := range f.items {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) Create(_ context.Context, userID string, items []services.OrderItemInput) (*models.Order, error) {
	f.gotUser, f.gotItems = userID, items
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Order{ID: "01ORDER", UserID: userID, Status: models.OrderStatusPending}, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id string, status string) (*models.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *o
	cp.Status = status
	return &cp, nil
}

func (f *fakeOrders) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return common.ErrorNotFound
	}
	return nil
}

type testEnv struct {
	srv        *GRPCServer
	issuer     *auth.Issuer
	users      *fakeUsers
	products   *fakeProducts
	categories *fakeCatalog[models.Category]
	suppliers  *fakeCatalog[models.Supplier]
	ratings    *fakeRatings
	orders     *fakeOrders
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	issuer, err := auth.NewIssuer("secret", 15*time.Minute)
	require.NoError(t, err)

	kitchenID := int64(3)

	env := &testEnv{
		issuer:   issuer,
		users:    &fakeUsers{},
		products: &fakeProducts{items: map[int64]*models.Product{1: {
			ID: 1, Name: "Mug", Images: "Mug/mug.png",
			CategoryID: &kitchenID, Category: &models.Category{ID: kitchenID, Name: "Kitchen"},
		}}},
		categories: &fakeCatalog[models.Category]{items: map[int64]*models.Category{
			1: {ID: 1, Name: "Kitchen"},
		}},
		suppliers: &fakeCatalog[models.Supplier]{items: map[int64]*models.Supplier{
			1: {ID: 1, Name: "Acme"},
		}},
		ratings: &fakeRatings{items: map[string]*models.Rating{
			"r-1": {ID: "r-1", ProductID: 1, UserID: "alice-id", Score: 4},
		}},
		orders: &fakeOrders{items: map[string]*models.Order{
			"o-1": {ID: "o-1", UserID: "alice-id", Status: models.OrderStatusPending,
				Items: []models.OrderItem{{ProductID: 1, Quantity: 2, UnitPrice: 4.5}}},
		}},
	}

	env.srv = NewGRPCServer("127.0.0.1:0", logging.Nop(), Services{
		Users:      env.users,
		Products:   env.products,
		Categories: env.categories,
		Suppliers:  env.suppliers,
		Ratings:    env.ratings,
		Orders:     env.orders,
	}, issuer, timex.NewManualClock(testNow), 0)

	return env
}

// token issues an access token valid at testNow.
func (e *testEnv) token(t *testing.T, userID, name string, roles ...string) string {
	t.Helper()
	tok, err := e.issuer.IssueAccessToken(&models.User{ID: userID, UserName: name}, roles, testNow)
	require.NoError(t, err)
	return tok
}

// as returns ctx carrying verified claims, as the interceptor would.
func (e *testEnv) as(t *testing.T, userID string, roles ...string) context.Context {
	t.Helper()
	c, err := e.issuer.ParseAccessToken(e.token(t, userID, "name-"+userID, roles...), testNow)
	require.NoError(t, err)
	return withClaims(context.Background(), c)
}
