package repositories

import (
	"context"
	"time"

	"ecommerce-api/config"
	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) Create(ctx context.Context, code string) (*models.Cart, error) {
	query := `
		INSERT INTO carts (cart_code, created_at, updated_at)
		VALUES ($1, $2, $2)
		RETURNING id, cart_code, created_at, updated_at
	`
	var cart models.Cart
	err := config.DB.QueryRow(ctx, query, code, time.Now()).
		Scan(&cart.ID, &cart.CartCode, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &cart, nil
}

func (r *CartRepository) GetByCode(ctx context.Context, code string) (*models.Cart, error) {
	query := `SELECT id, cart_code, created_at, updated_at FROM carts WHERE cart_code = $1`

	var cart models.Cart
	err := config.DB.QueryRow(ctx, query, code).
		Scan(&cart.ID, &cart.CartCode, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &cart, nil
}

func (r *CartRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := config.DB.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM carts WHERE cart_code = $1)`, code).Scan(&exists)
	return exists, err
}

// Delete removes the cart and, through ON DELETE CASCADE, all its items.
func (r *CartRepository) Delete(ctx context.Context, code string) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM carts WHERE cart_code = $1`, code)
	if err != nil {
		return translateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// GetItems loads the cart's items with their product snapshots. The join is
// a LEFT JOIN so a dangling product reference yields an item with a nil
// Product instead of dropping the row or failing.
func (r *CartRepository) GetItems(ctx context.Context, cartID int) ([]models.CartItem, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		       p.id, p.name, p.description, p.price, p.image_url, p.category_id, p.slug,
		       p.created_at, p.updated_at
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.updated_at DESC, ci.created_at DESC
	`
	rows, err := config.DB.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var (
			pID          *int
			pName        *string
			pDescription *string
			pPrice       decimal.NullDecimal
			pImageURL    *string
			pCategoryID  *int
			pSlug        *string
			pCreatedAt   *time.Time
			pUpdatedAt   *time.Time
		)
		err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&pID, &pName, &pDescription, &pPrice, &pImageURL, &pCategoryID, &pSlug,
			&pCreatedAt, &pUpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if pID != nil {
			item.Product = &models.Product{
				ID:          *pID,
				Name:        *pName,
				Description: *pDescription,
				Price:       pPrice.Decimal,
				ImageURL:    pImageURL,
				CategoryID:  pCategoryID,
				Slug:        *pSlug,
				CreatedAt:   *pCreatedAt,
				UpdatedAt:   *pUpdatedAt,
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpsertItem inserts the (cart, product) row or overwrites its quantity.
// The unique pair constraint makes the insert-or-update atomic, so two
// concurrent adds for the same product cannot create duplicate rows.
func (r *CartRepository) UpsertItem(ctx context.Context, cartID, productID, quantity int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO cart_items (cart_id, product_id, quantity, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (cart_id, product_id)
			DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		`
		if _, err := tx.Exec(ctx, query, cartID, productID, quantity, time.Now()); err != nil {
			return translateErr(err)
		}
		return touchCart(ctx, tx, cartID)
	})
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID, quantity int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3 AND cart_id = $4`
		tag, err := tx.Exec(ctx, query, quantity, time.Now(), itemID, cartID)
		if err != nil {
			return translateErr(err)
		}
		if tag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return touchCart(ctx, tx, cartID)
	})
}

func (r *CartRepository) DeleteItem(ctx context.Context, cartID, itemID int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
		if err != nil {
			return translateErr(err)
		}
		if tag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return touchCart(ctx, tx, cartID)
	})
}

func (r *CartRepository) ClearItems(ctx context.Context, cartID int) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
			return translateErr(err)
		}
		return touchCart(ctx, tx, cartID)
	})
}

// inTx runs an item mutation and the parent-cart timestamp touch as one
// atomic unit, so a cart never reflects a half-applied change.
func (r *CartRepository) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func touchCart(ctx context.Context, tx pgx.Tx, cartID int) error {
	_, err := tx.Exec(ctx, `UPDATE carts SET updated_at = $1 WHERE id = $2`, time.Now(), cartID)
	return err
}
