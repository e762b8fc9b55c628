package services

import (
	"context"
	"fmt"
	"time"

	"ecommerce-api/models"
)

// In-memory stand-ins for the repositories, mirroring the storage-layer
// contracts: scoped lookups, unique-pair upsert, conflict on duplicates.

type fakeProducts struct {
	byID map[int]*models.Product
}

func (f *fakeProducts) GetByID(ctx context.Context, id int) (*models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

type fakeCartStore struct {
	products      *fakeProducts
	carts         map[string]*models.Cart
	items         map[int][]*models.CartItem
	nextCartID    int
	nextItemID    int
	alwaysCollide bool
}

func newFakeCartStore(products *fakeProducts) *fakeCartStore {
	return &fakeCartStore{
		products: products,
		carts:    map[string]*models.Cart{},
		items:    map[int][]*models.CartItem{},
	}
}

func (f *fakeCartStore) Create(ctx context.Context, code string) (*models.Cart, error) {
	f.nextCartID++
	now := time.Now()
	cart := &models.Cart{ID: f.nextCartID, CartCode: code, CreatedAt: now, UpdatedAt: now}
	f.carts[code] = cart
	return cart, nil
}

func (f *fakeCartStore) GetByCode(ctx context.Context, code string) (*models.Cart, error) {
	cart, ok := f.carts[code]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cart, nil
}

func (f *fakeCartStore) CodeExists(ctx context.Context, code string) (bool, error) {
	if f.alwaysCollide {
		return true, nil
	}
	_, ok := f.carts[code]
	return ok, nil
}

func (f *fakeCartStore) Delete(ctx context.Context, code string) error {
	cart, ok := f.carts[code]
	if !ok {
		return models.ErrNotFound
	}
	delete(f.items, cart.ID)
	delete(f.carts, code)
	return nil
}

func (f *fakeCartStore) GetItems(ctx context.Context, cartID int) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, item := range f.items[cartID] {
		copied := *item
		copied.Product = f.products.byID[item.ProductID]
		out = append(out, copied)
	}
	return out, nil
}

func (f *fakeCartStore) UpsertItem(ctx context.Context, cartID, productID, quantity int) error {
	for _, item := range f.items[cartID] {
		if item.ProductID == productID {
			item.Quantity = quantity
			item.UpdatedAt = time.Now()
			return nil
		}
	}
	f.nextItemID++
	now := time.Now()
	f.items[cartID] = append(f.items[cartID], &models.CartItem{
		ID: f.nextItemID, CartID: cartID, ProductID: productID,
		Quantity: quantity, CreatedAt: now, UpdatedAt: now,
	})
	return nil
}

func (f *fakeCartStore) UpdateItemQuantity(ctx context.Context, cartID, itemID, quantity int) error {
	for _, item := range f.items[cartID] {
		if item.ID == itemID {
			item.Quantity = quantity
			item.UpdatedAt = time.Now()
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeCartStore) DeleteItem(ctx context.Context, cartID, itemID int) error {
	items := f.items[cartID]
	for i, item := range items {
		if item.ID == itemID {
			f.items[cartID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeCartStore) ClearItems(ctx context.Context, cartID int) error {
	f.items[cartID] = nil
	return nil
}

type fakeCategoryStore struct {
	byID   map[int]*models.Category
	nextID int
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{byID: map[int]*models.Category{}}
}

func (f *fakeCategoryStore) GetAll(ctx context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, cat := range f.byID {
		out = append(out, *cat)
	}
	return out, nil
}

func (f *fakeCategoryStore) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, cat := range f.byID {
		if cat.Slug == slug {
			return cat, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeCategoryStore) GetByID(ctx context.Context, id int) (*models.Category, error) {
	cat, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return cat, nil
}

func (f *fakeCategoryStore) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	for _, cat := range f.byID {
		if cat.Slug == slug && cat.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryStore) Create(ctx context.Context, cat *models.Category) error {
	for _, existing := range f.byID {
		if existing.Name == cat.Name || existing.Slug == cat.Slug {
			return fmt.Errorf("%w: categories unique constraint", models.ErrConflict)
		}
	}
	f.nextID++
	cat.ID = f.nextID
	f.byID[cat.ID] = cat
	return nil
}

func (f *fakeCategoryStore) Update(ctx context.Context, cat *models.Category) error {
	if _, ok := f.byID[cat.ID]; !ok {
		return models.ErrNotFound
	}
	f.byID[cat.ID] = cat
	return nil
}

func (f *fakeCategoryStore) Delete(ctx context.Context, slug string) error {
	for id, cat := range f.byID {
		if cat.Slug == slug {
			delete(f.byID, id)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeProductStore struct {
	byID   map[int]*models.Product
	nextID int
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{byID: map[int]*models.Product{}}
}

func (f *fakeProductStore) GetAll(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	out := []models.Product{}
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (f *fakeProductStore) GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.byID {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	for _, p := range f.byID {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeProductStore) SlugExists(ctx context.Context, slug string, excludeID int) (bool, error) {
	for _, p := range f.byID {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductStore) Create(ctx context.Context, p *models.Product) error {
	for _, existing := range f.byID {
		if existing.Slug == p.Slug {
			return fmt.Errorf("%w: products slug unique constraint", models.ErrConflict)
		}
	}
	f.nextID++
	p.ID = f.nextID
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, p *models.Product) error {
	if _, ok := f.byID[p.ID]; !ok {
		return models.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, slug string) error {
	for id, p := range f.byID {
		if p.Slug == slug {
			delete(f.byID, id)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeReviewStore struct {
	reviews map[string]*models.Review
	nextID  int
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{reviews: map[string]*models.Review{}}
}

func (f *fakeReviewStore) Create(ctx context.Context, review *models.Review) error {
	key := fmt.Sprintf("%d/%d", review.ProductID, review.UserID)
	if _, ok := f.reviews[key]; ok {
		return fmt.Errorf("%w: reviews unique constraint", models.ErrConflict)
	}
	f.nextID++
	review.ID = f.nextID
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	f.reviews[key] = review
	return nil
}

func (f *fakeReviewStore) GetByProduct(ctx context.Context, productID int) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeUsers struct {
	byID map[int]*models.User
}

func (f *fakeUsers) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return u, nil
}
