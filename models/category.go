package models

type Category struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"image"`
}

// CategoryDetail is the retrieve shape: the list fields plus the
// category's products in their list shape.
type CategoryDetail struct {
	ID       int               `json:"id"`
	Name     string            `json:"name"`
	Slug     string            `json:"slug"`
	ImageURL *string           `json:"image"`
	Products []ProductListItem `json:"products"`
}

func NewCategoryDetail(c *Category, products []ProductListItem) *CategoryDetail {
	if products == nil {
		products = []ProductListItem{}
	}
	return &CategoryDetail{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
		Products: products,
	}
}

// CategorySnapshot is the minimal embedded shape used inside product details.
type CategorySnapshot struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"image"`
}

func NewCategorySnapshot(c *Category) *CategorySnapshot {
	return &CategorySnapshot{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ImageURL: c.ImageURL,
	}
}
