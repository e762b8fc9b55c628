package services

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/models"
	"ecommerce-api/repositories"
	"ecommerce-api/utils"
)

type CartStore interface {
	Create(ctx context.Context, code string) (*models.Cart, error)
	GetByCode(ctx context.Context, code string) (*models.Cart, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, code string) error
	GetItems(ctx context.Context, cartID int) ([]models.CartItem, error)
	UpsertItem(ctx context.Context, cartID, productID, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID, quantity int) error
	DeleteItem(ctx context.Context, cartID, itemID int) error
	ClearItems(ctx context.Context, cartID int) error
}

type ProductGetter interface {
	GetByID(ctx context.Context, id int) (*models.Product, error)
}

const maxCodeAttempts = 5

type CartService struct {
	carts    CartStore
	products ProductGetter
	newCode  func() string
}

func NewCartService() *CartService {
	return &CartService{
		carts:    repositories.NewCartRepository(),
		products: repositories.NewProductRepository(),
		newCode:  utils.GenerateCartCode,
	}
}

// CreateCart generates a fresh code and persists the cart. Generation is
// retried up to five times when a code is already taken; if every attempt
// collides the last code is used anyway and the unique constraint has the
// final say. With a 36^12 keyspace the retry bound is never reached in
// practice.
func (s *CartService) CreateCart(ctx context.Context) (*models.CartView, error) {
	code := s.newCode()
	for attempt := 1; attempt < maxCodeAttempts; attempt++ {
		taken, err := s.carts.CodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !taken {
			break
		}
		code = s.newCode()
	}

	cart, err := s.carts.Create(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// GetOrCreateCart returns the cart addressed by code, creating it with that
// code when absent.
func (s *CartService) GetOrCreateCart(ctx context.Context, code string) (*models.CartView, error) {
	cart, err := s.carts.GetByCode(ctx, code)
	if errors.Is(err, models.ErrNotFound) {
		cart, err = s.carts.Create(ctx, code)
	}
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) GetCart(ctx context.Context, code string) (*models.CartView, error) {
	cart, err := s.carts.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) DeleteCart(ctx context.Context, code string) error {
	return s.carts.Delete(ctx, code)
}

// AddOrSetItem puts a product into the cart. When the (cart, product) pair
// already exists the quantity is overwritten, not accumulated: the
// operation is an idempotent last-write-wins set.
func (s *CartService) AddOrSetItem(ctx context.Context, code string, productID, quantity int) (*models.CartView, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", models.ErrValidation)
	}

	cart, err := s.carts.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", models.ErrNotFound, productID)
		}
		return nil, err
	}

	if err := s.carts.UpsertItem(ctx, cart.ID, product.ID, quantity); err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// UpdateItem overwrites the quantity of an item scoped to the cart. A
// quantity of zero or less removes the item instead of storing a
// non-positive count.
func (s *CartService) UpdateItem(ctx context.Context, code string, itemID, quantity int) (*models.CartView, error) {
	cart, err := s.carts.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		err = s.carts.DeleteItem(ctx, cart.ID, itemID)
	} else {
		err = s.carts.UpdateItemQuantity(ctx, cart.ID, itemID, quantity)
	}
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) RemoveItem(ctx context.Context, code string, itemID int) (*models.CartView, error) {
	cart, err := s.carts.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.carts.DeleteItem(ctx, cart.ID, itemID); err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

func (s *CartService) ClearCart(ctx context.Context, code string) (*models.CartView, error) {
	cart, err := s.carts.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// view rebuilds the aggregate response; the total is recomputed from
// current quantities and prices on every call, never cached.
func (s *CartService) view(ctx context.Context, cart *models.Cart) (*models.CartView, error) {
	items, err := s.carts.GetItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	return models.NewCartView(cart, items), nil
}
