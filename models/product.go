package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image"`
	CategoryID  *int            `json:"category_id"`
	Slug        string          `json:"slug"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListItem is the lightweight list shape, also embedded in cart items
// and category details.
type ProductListItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	ImageURL *string         `json:"image"`
	Price    decimal.Decimal `json:"price"`
}

func NewProductListItem(p *Product) ProductListItem {
	return ProductListItem{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		ImageURL: p.ImageURL,
		Price:    p.Price,
	}
}

// ProductDetail is the retrieve shape: the list fields plus description,
// a minimal category snapshot (nil when the product is uncategorized)
// and the product's reviews.
type ProductDetail struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Slug        string            `json:"slug"`
	ImageURL    *string           `json:"image"`
	Price       decimal.Decimal   `json:"price"`
	Category    *CategorySnapshot `json:"category"`
	Reviews     []Review          `json:"reviews"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func NewProductDetail(p *Product, category *CategorySnapshot, reviews []Review) *ProductDetail {
	if reviews == nil {
		reviews = []Review{}
	}
	return &ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Slug:        p.Slug,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		Category:    category,
		Reviews:     reviews,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
