package suppliers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectSupplier = `SELECT id, name, contact_email, phone, address FROM suppliers`

type scanner interface {
	Scan(dest ...any) error
}

func scanSupplier(row scanner) (*models.Supplier, error) {
	s := &models.Supplier{}
	if err := row.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.Phone, &s.Address); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Supplier, error) {
	s, err := scanSupplier(r.db.QueryRowContext(ctx, selectSupplier+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, selectSupplier+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Supplier) (*models.Supplier, error) {
	query :=
		`INSERT INTO suppliers (name, contact_email, phone, address)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, s.Name, s.ContactEmail, s.Phone, s.Address).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Update(ctx context.Context, s *models.Supplier) error {
	query :=
		`UPDATE suppliers SET name = $2, contact_email = $3, phone = $4, address = $5
		 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.ContactEmail, s.Phone, s.Address)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return notFoundIfUntouched(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return notFoundIfUntouched(res)
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists); err != nil {
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
