package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkaneko/sleepoints/internal/models"
	"github.com/mkaneko/sleepoints/internal/storage"
)

// CreateProduct inserts a new catalog product.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO products (id, name, image, price, description) VALUES (?, ?, ?, ?, ?)",
		product.ID, product.Name, product.Image, product.Price, product.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// GetProduct retrieves a product by its ID.
func (s *SQLiteStore) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	product := &models.Product{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, image, price, description FROM products WHERE id = ?",
		productID,
	).Scan(&product.ID, &product.Name, &product.Image, &product.Price, &product.Description)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ListProducts returns the full catalog ordered by name.
func (s *SQLiteStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, image, price, description FROM products ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var catalog []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &p.Price, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		catalog = append(catalog, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return catalog, nil
}
