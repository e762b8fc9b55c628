package services

import (
	"context"
	"fmt"
	"strings"

	"ecommerce-api/models"
	"ecommerce-api/repositories"

	"github.com/shopspring/decimal"
)

type ProductStore interface {
	GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	SlugExists(ctx context.Context, slug string, excludeID int) (bool, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, slug string) error
}

type CategoryGetter interface {
	GetByID(ctx context.Context, id int) (*models.Category, error)
}

type ReviewLister interface {
	GetByProduct(ctx context.Context, productID int) ([]models.Review, error)
}

type ProductService struct {
	products   ProductStore
	categories CategoryGetter
	reviews    ReviewLister
}

func NewProductService() *ProductService {
	return &ProductService{
		products:   repositories.NewProductRepository(),
		categories: repositories.NewCategoryRepository(),
		reviews:    repositories.NewReviewRepository(),
	}
}

func (s *ProductService) List(ctx context.Context, page, limit int) ([]models.ProductListItem, models.MetaData, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.products.GetAll(ctx, page, limit)
	if err != nil {
		return nil, models.MetaData{}, err
	}

	items := make([]models.ProductListItem, 0, len(products))
	for i := range products {
		items = append(items, models.NewProductListItem(&products[i]))
	}

	totalPages := (total + limit - 1) / limit
	meta := models.MetaData{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
	return items, meta, nil
}

func (s *ProductService) Get(ctx context.Context, slug string) (*models.ProductDetail, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	var snapshot *models.CategorySnapshot
	if p.CategoryID != nil {
		cat, err := s.categories.GetByID(ctx, *p.CategoryID)
		if err == nil {
			snapshot = models.NewCategorySnapshot(cat)
		}
	}

	reviews, err := s.reviews.GetByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return models.NewProductDetail(p, snapshot, reviews), nil
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest, imageURL *string) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category %d does not exist", models.ErrValidation, *req.CategoryID)
		}
	}

	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug, err = deriveSlug(ctx, name, 0, s.products.SlugExists)
		if err != nil {
			return nil, err
		}
	}

	p := &models.Product{
		Name:        name,
		Description: req.Description,
		Price:       price,
		ImageURL:    imageURL,
		CategoryID:  req.CategoryID,
		Slug:        slug,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, slug string, req models.UpdateProductRequest, imageURL *string) (*models.Product, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", models.ErrValidation)
		}
		p.Name = name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		p.Price = price
	}
	if req.CategoryID != nil {
		// Zero clears the category reference.
		if *req.CategoryID == 0 {
			p.CategoryID = nil
		} else {
			if _, err := s.categories.GetByID(ctx, *req.CategoryID); err != nil {
				return nil, fmt.Errorf("%w: category %d does not exist", models.ErrValidation, *req.CategoryID)
			}
			p.CategoryID = req.CategoryID
		}
	}
	if req.Slug != nil {
		p.Slug = strings.TrimSpace(*req.Slug)
	} else if req.Name != nil {
		p.Slug, err = deriveSlug(ctx, p.Name, p.ID, s.products.SlugExists)
		if err != nil {
			return nil, err
		}
	}
	if imageURL != nil {
		p.ImageURL = imageURL
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, slug string) error {
	return s.products.Delete(ctx, slug)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q is not a valid decimal", models.ErrValidation, raw)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price cannot be negative", models.ErrValidation)
	}
	return price, nil
}
