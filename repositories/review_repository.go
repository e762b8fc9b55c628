package repositories

import (
	"context"
	"time"

	"ecommerce-api/config"
	"ecommerce-api/models"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// Create inserts the review; the (product_id, user_id) unique constraint
// rejects a second review from the same user as a conflict.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (product_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`
	err := config.DB.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.Rating, review.Comment, time.Now(),
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	return translateErr(err)
}

func (r *ReviewRepository) GetByProduct(ctx context.Context, productID int) ([]models.Review, error) {
	query := `
		SELECT r.id, r.product_id, r.user_id, u.full_name, r.rating, r.comment, r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC
	`
	rows, err := config.DB.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.UserName,
			&rev.Rating, &rev.Comment, &rev.CreatedAt, &rev.UpdatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
