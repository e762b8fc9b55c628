package services

import (
	"context"
	"fmt"
	"strings"

	"ecommerce-api/models"
	"ecommerce-api/repositories"
)

type CategoryStore interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	SlugExists(ctx context.Context, slug string, excludeID int) (bool, error)
	Create(ctx context.Context, cat *models.Category) error
	Update(ctx context.Context, cat *models.Category) error
	Delete(ctx context.Context, slug string) error
}

type CategoryProductLister interface {
	GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error)
}

type CategoryService struct {
	categories CategoryStore
	products   CategoryProductLister
}

func NewCategoryService() *CategoryService {
	return &CategoryService{
		categories: repositories.NewCategoryRepository(),
		products:   repositories.NewProductRepository(),
	}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, slug string) (*models.CategoryDetail, error) {
	cat, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetByCategory(ctx, cat.ID)
	if err != nil {
		return nil, err
	}

	items := make([]models.ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, models.NewProductListItem(&products[i]))
	}
	return models.NewCategoryDetail(cat, items), nil
}

func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest, imageURL *string) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		var err error
		slug, err = deriveSlug(ctx, name, 0, s.categories.SlugExists)
		if err != nil {
			return nil, err
		}
	}

	cat := &models.Category{
		Name:     name,
		Slug:     slug,
		ImageURL: imageURL,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, slug string, req models.UpdateCategoryRequest, imageURL *string) (*models.Category, error) {
	cat, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", models.ErrValidation)
		}
		cat.Name = name
	}

	// An explicit slug wins; otherwise a name change re-derives one,
	// probing past other records but not the category itself.
	if req.Slug != nil {
		cat.Slug = strings.TrimSpace(*req.Slug)
	} else if req.Name != nil {
		cat.Slug, err = deriveSlug(ctx, cat.Name, cat.ID, s.categories.SlugExists)
		if err != nil {
			return nil, err
		}
	}

	if imageURL != nil {
		cat.ImageURL = imageURL
	}

	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Delete(ctx context.Context, slug string) error {
	return s.categories.Delete(ctx, slug)
}
