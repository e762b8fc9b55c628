package repositories

import (
	"context"

	"ecommerce-api/config"
	"ecommerce-api/models"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, slug, image_url FROM categories ORDER BY name ASC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.ImageURL); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `SELECT id, name, slug, image_url FROM categories WHERE slug = $1`

	var cat models.Category
	err := config.DB.QueryRow(ctx, query, slug).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.ImageURL)
	if err != nil {
		return nil, translateErr(err)
	}
	return &cat, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	query := `SELECT id, name, slug, image_url FROM categories WHERE id = $1`

	var cat models.Category
	err := config.DB.QueryRow(ctx, query, id).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.ImageURL)
	if err != nil {
		return nil, translateErr(err)
	}
	return &cat, nil
}

// SlugExists reports whether another category already uses the slug.
// excludeID skips the record being updated; pass 0 on create.
func (r *CategoryRepository) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id != $2)`

	var exists bool
	err := config.DB.QueryRow(ctx, query, slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	query := `INSERT INTO categories (name, slug, image_url) VALUES ($1, $2, $3) RETURNING id`

	err := config.DB.QueryRow(ctx, query, cat.Name, cat.Slug, cat.ImageURL).Scan(&cat.ID)
	return translateErr(err)
}

func (r *CategoryRepository) Update(ctx context.Context, cat *models.Category) error {
	query := `UPDATE categories SET name = $1, slug = $2, image_url = $3 WHERE id = $4`

	tag, err := config.DB.Exec(ctx, query, cat.Name, cat.Slug, cat.ImageURL, cat.ID)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes the category; dependent products keep existing with their
// category reference cleared by the schema's ON DELETE SET NULL.
func (r *CategoryRepository) Delete(ctx context.Context, slug string) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
