package repositories

import (
	"context"
	"time"

	"ecommerce-api/config"
	"ecommerce-api/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, description, price, image_url, category_id, slug, created_at, updated_at`

func scanProduct(row interface{ Scan(...any) error }, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.Slug, &p.CreatedAt, &p.UpdatedAt)
}

// GetAll returns the newest-first product page plus the overall count.
func (r *ProductRepository) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

	var p models.Product
	if err := scanProduct(config.DB.QueryRow(ctx, query, slug), &p); err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p models.Product
	if err := scanProduct(config.DB.QueryRow(ctx, query, id), &p); err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (r *ProductRepository) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1 AND id != $2)`

	var exists bool
	err := config.DB.QueryRow(ctx, query, slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, image_url, category_id, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := config.DB.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.CategoryID, p.Slug, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translateErr(err)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products SET name = $1, description = $2, price = $3, image_url = $4,
		       category_id = $5, slug = $6, updated_at = $7
		WHERE id = $8
	`
	tag, err := config.DB.Exec(ctx, query,
		p.Name, p.Description, p.Price, p.ImageURL, p.CategoryID, p.Slug, time.Now(), p.ID,
	)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the product permanently; cart items referencing it go with
// it via ON DELETE CASCADE.
func (r *ProductRepository) Delete(ctx context.Context, slug string) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM products WHERE slug = $1`, slug)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
