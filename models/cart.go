package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        int       `json:"id"`
	CartCode  string    `json:"cart_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem carries the product it references; Product is nil when the
// reference could not be resolved.
type CartItem struct {
	ID        int       `json:"id"`
	CartID    int       `json:"cart_id"`
	ProductID int       `json:"product_id"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineTotal is quantity times unit price. A broken product reference
// degrades to zero instead of failing the whole cart view.
func (ci *CartItem) LineTotal() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

type CartItemView struct {
	ID        int              `json:"id"`
	Product   *ProductListItem `json:"product"`
	Quantity  int              `json:"quantity"`
	LineTotal decimal.Decimal  `json:"line_total"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CartView is the full aggregate response: the cart, its items and the
// total recomputed from current quantities and prices.
type CartView struct {
	ID        int             `json:"id"`
	CartCode  string          `json:"cart_code"`
	Items     []CartItemView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewCartView(cart *Cart, items []CartItem) *CartView {
	views := make([]CartItemView, 0, len(items))
	total := decimal.Zero
	for i := range items {
		item := &items[i]
		lineTotal := item.LineTotal()
		total = total.Add(lineTotal)

		var product *ProductListItem
		if item.Product != nil {
			p := NewProductListItem(item.Product)
			product = &p
		}
		views = append(views, CartItemView{
			ID:        item.ID,
			Product:   product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return &CartView{
		ID:        cart.ID,
		CartCode:  cart.CartCode,
		Items:     views,
		Total:     total,
		CreatedAt: cart.CreatedAt,
		UpdatedAt: cart.UpdatedAt,
	}
}
