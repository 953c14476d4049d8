package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"content-site-api/internal/domain"
)

const productsTable = "products"

// PostgresProductRepository implements ProductRepository using PostgreSQL.
type PostgresProductRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgresProductRepository.
func NewPostgresProductRepository(pool *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{pool: pool}
}

// Create inserts a product.
func (r *PostgresProductRepository) Create(ctx context.Context, product *domain.Product) error {
	defer observe(productsTable, "create")()

	product.ID = uuid.New().String()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, category, description, image, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))
		RETURNING created_at
	`, product.ID, product.Name, product.Category, product.Description, product.Image,
		nullTime(product.CreatedAt)).Scan(&product.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List returns every product, newest first.
func (r *PostgresProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	defer observe(productsTable, "list")()

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, description, image, created_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		var p domain.Product
		err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.Image, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

// Update replaces the mutable fields of a product. An empty Image keeps the
// stored image URL. The product is refreshed from the stored row.
func (r *PostgresProductRepository) Update(ctx context.Context, product *domain.Product) error {
	defer observe(productsTable, "update")()

	err := r.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $2, category = $3, description = $4, image = COALESCE($5, image)
		WHERE id = $1
		RETURNING name, category, description, image, created_at
	`, product.ID, product.Name, product.Category, product.Description, nullString(product.Image)).
		Scan(&product.Name, &product.Category, &product.Description, &product.Image, &product.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, productsTable, id)
}
