package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quickshop/models"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, description, price, stock, is_active, created_at, updated_at
	          FROM products WHERE id = $1 AND is_active = true`

	var p models.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, q models.ProductQuery) ([]models.Product, int, error) {
	where := " WHERE is_active = true"
	args := []interface{}{}
	paramIndex := 1

	if q.Search != "" {
		where += fmt.Sprintf(" AND LOWER(name) LIKE LOWER($%d)", paramIndex)
		args = append(args, "%"+q.Search+"%")
		paramIndex++
	}
	if q.MinPrice > 0 {
		where += fmt.Sprintf(" AND price >= $%d", paramIndex)
		args = append(args, q.MinPrice)
		paramIndex++
	}
	if q.MaxPrice > 0 {
		where += fmt.Sprintf(" AND price <= $%d", paramIndex)
		args = append(args, q.MaxPrice)
		paramIndex++
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := " ORDER BY created_at DESC"
	switch q.Sort {
	case "name_asc":
		orderBy = " ORDER BY name ASC"
	case "name_desc":
		orderBy = " ORDER BY name DESC"
	case "price_asc":
		orderBy = " ORDER BY price ASC"
	case "price_desc":
		orderBy = " ORDER BY price DESC"
	}

	offset := (q.Page - 1) * q.Limit
	query := `SELECT id, name, description, price, stock, is_active, created_at, updated_at FROM products` +
		where + orderBy + fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, q.Limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, true, $5, $6)
		RETURNING id, is_active, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		product.Name, product.Description, product.Price, product.Stock, now, now,
	).Scan(&product.ID, &product.IsActive, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, price = $3, stock = $4,
	          is_active = $5, updated_at = $6 WHERE id = $7`
	result, err := r.db.Exec(ctx, query,
		product.Name, product.Description, product.Price, product.Stock,
		product.IsActive, time.Now(), product.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Deactivate(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return models.ErrProductNotFound
	}
	return nil
}
