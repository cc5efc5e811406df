package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `p.id, p.name, p.description, p.price, p.stock, p.category_id, p.supplier_id, p.images, p.created_at, p.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner, extra ...any) (*models.Product, error) {
	p := &models.Product{}
	var categoryID, supplierID sql.NullInt64
	dest := []any{&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &categoryID, &supplierID, &p.Images, &p.CreatedAt, &p.UpdatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if categoryID.Valid {
		p.CategoryID = &categoryID.Int64
	}
	if supplierID.Valid {
		p.SupplierID = &supplierID.Int64
	}
	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetDetailed(ctx context.Context, id int64) (*models.Product, error) {
	query :=
		`SELECT ` + productColumns + `,
		        c.name, c.description,
		        s.name, s.contact_email, s.phone, s.address
		 FROM products p
		 LEFT JOIN categories c ON c.id = p.category_id
		 LEFT JOIN suppliers s ON s.id = p.supplier_id
		 WHERE p.id = $1`

	var cName, cDesc, sName, sEmail, sPhone, sAddr sql.NullString
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id), &cName, &cDesc, &sName, &sEmail, &sPhone, &sAddr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if p.CategoryID != nil && cName.Valid {
		p.Category = &models.Category{ID: *p.CategoryID, Name: cName.String, Description: cDesc.String}
	}
	if p.SupplierID != nil && sName.Valid {
		p.Supplier = &models.Supplier{
			ID:           *p.SupplierID,
			Name:         sName.String,
			ContactEmail: sEmail.String,
			Phone:        sPhone.String,
			Address:      sAddr.String,
		}
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products p ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query :=
		`INSERT INTO products (name, description, price, stock, category_id, supplier_id, images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.SupplierID, p.Images,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.Product) error {
	query :=
		`UPDATE products
		 SET name = $2, description = $3, price = $4, stock = $5,
		     category_id = $6, supplier_id = $7, images = $8, updated_at = now()
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.CategoryID, p.SupplierID, p.Images)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return notFoundIfUntouched(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("%w: product %d is referenced by orders", common.ErrorConflict, id)
		}
		return fmt.Errorf("db error: %w", err)
	}
	return notFoundIfUntouched(res)
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func notFoundIfUntouched(res sql.Result) error {
	found, err := dbx.Affected(res)
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if !found {
		return common.ErrorNotFound
	}
	return nil
}
