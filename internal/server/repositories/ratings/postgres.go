package ratings

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

const selectRating = `SELECT id, product_id, user_id, score, comment, created_at FROM ratings`

type scanner interface {
	Scan(dest ...any) error
}

func scanRating(row scanner) (*models.Rating, error) {
	r := &models.Rating{}
	if err := row.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Score, &r.Comment, &r.CreatedAt); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Rating, error) {
	rating, err := scanRating(r.db.QueryRowContext(ctx, selectRating+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rating, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Rating, error) {
	return r.list(ctx, selectRating+` ORDER BY created_at, id`)
}

func (r *PostgresRepository) ListByProduct(ctx context.Context, productID int64) ([]*models.Rating, error) {
	return r.list(ctx, selectRating+` WHERE product_id = $1 ORDER BY created_at, id`, productID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Rating, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Rating
	for rows.Next() {
		rating, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	query :=
		`INSERT INTO ratings (id, product_id, user_id, score, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		rating.ID, rating.ProductID, rating.UserID, rating.Score, rating.Comment,
	).Scan(&rating.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rating, nil
}

func (r *PostgresRepository) Update(ctx context.Context, rating *models.Rating) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE ratings SET score = $2, comment = $3 WHERE id = $1`,
		rating.ID, rating.Score, rating.Comment)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return notFoundIfUntouched(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return notFoundIfUntouched(res)
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM ratings WHERE id = $1)`, id).Scan(&exists); err != nil {
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
