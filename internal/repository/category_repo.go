package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"shop-interests/internal/domain"
)

// CategoryRepository define persistencia de categorías e intereses por usuario.
type CategoryRepository interface {
	Count(ctx context.Context) (int64, error)
	ListWithInterest(ctx context.Context, userID string, limit, offset int) ([]domain.CategoryInterest, error)
	AddInterest(ctx context.Context, userID, categoryID string) error
	RemoveInterest(ctx context.Context, userID, categoryID string) error
}

// PgCategoryRepository implementa CategoryRepository usando pgxpool.
type PgCategoryRepository struct {
	pool *pgxpool.Pool
}

func NewPgCategoryRepository(pool *pgxpool.Pool) *PgCategoryRepository {
	return &PgCategoryRepository{pool: pool}
}

func (r *PgCategoryRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM categories`
	var total int64
	err := r.pool.QueryRow(ctx, query).Scan(&total)
	return total, err
}

func (r *PgCategoryRepository) ListWithInterest(ctx context.Context, userID string, limit, offset int) ([]domain.CategoryInterest, error) {
	const query = `
		SELECT c.id, c.name, c.created_at, uc.user_id IS NOT NULL
		FROM categories c
		LEFT JOIN user_categories uc
			ON uc.category_id = c.id AND uc.user_id = $1
		ORDER BY c.name, c.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CategoryInterest
	for rows.Next() {
		var item domain.CategoryInterest
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt, &item.IsInterested); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PgCategoryRepository) AddInterest(ctx context.Context, userID, categoryID string) error {
	const query = `
		INSERT INTO user_categories (user_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, category_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, userID, categoryID)
	return err
}

func (r *PgCategoryRepository) RemoveInterest(ctx context.Context, userID, categoryID string) error {
	const query = `
		DELETE FROM user_categories
		WHERE user_id = $1 AND category_id = $2
	`
	_, err := r.pool.Exec(ctx, query, userID, categoryID)
	return err
}
