package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickshop/models"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

// AddLine inserts the (user, product) line or increments its quantity when it
// already exists. The upsert is a single statement, so two concurrent adds for
// the same product both land: the row ends at the sum of the increments.
func (r *CartRepository) AddLine(ctx context.Context, userID, productID, quantity int) (*models.CartLine, error) {
	query := `
		INSERT INTO shopping_carts (user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = shopping_carts.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`
	line := &models.CartLine{}
	err := r.db.QueryRow(ctx, query, userID, productID, quantity, time.Now()).Scan(
		&line.ID, &line.UserID, &line.ProductID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateLine sets the quantity to the exact supplied value. The user_id in the
// WHERE clause is the ownership check: another user's line id behaves exactly
// like a missing one.
func (r *CartRepository) UpdateLine(ctx context.Context, userID, lineID, quantity int) (*models.CartLine, error) {
	query := `
		UPDATE shopping_carts SET quantity = $1, updated_at = $2
		WHERE id = $3 AND user_id = $4
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`
	line := &models.CartLine{}
	err := r.db.QueryRow(ctx, query, quantity, time.Now(), lineID, userID).Scan(
		&line.ID, &line.UserID, &line.ProductID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrLineNotFound
	}
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (r *CartRepository) RemoveLine(ctx context.Context, userID, productID int) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM shopping_carts WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrLineNotFound
	}
	return nil
}

func (r *CartRepository) ListLines(ctx context.Context, userID int) ([]models.CartLine, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM shopping_carts WHERE user_id = $1 ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []models.CartLine{}
	for rows.Next() {
		var line models.CartLine
		if err := rows.Scan(&line.ID, &line.UserID, &line.ProductID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
