package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/categories"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/orders"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/products"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/ratings"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/suppliers"
	"github.com/dmitrijs2005/storekeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
	Categories(db dbx.DBTX) categories.Repository
	Suppliers(db dbx.DBTX) suppliers.Repository
	Ratings(db dbx.DBTX) ratings.Repository
	Orders(db dbx.DBTX) orders.Repository
}
