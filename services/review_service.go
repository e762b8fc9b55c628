package services

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/models"
	"ecommerce-api/repositories"
)

type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
}

type UserGetter interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

type ReviewService struct {
	reviews  ReviewStore
	products ProductGetter
	users    UserGetter
}

func NewReviewService() *ReviewService {
	return &ReviewService{
		reviews:  repositories.NewReviewRepository(),
		products: repositories.NewProductRepository(),
		users:    repositories.NewUserRepository(),
	}
}

// Create records a review under the caller's authenticated identity. The
// user id always comes from the token, never from the request body, and
// the (product, user) unique constraint rejects a second review.
func (s *ReviewService) Create(ctx context.Context, userID int, req models.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", models.ErrValidation)
	}

	if _, err := s.products.GetByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: product %d", models.ErrNotFound, req.ProductID)
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ProductID: req.ProductID,
		UserID:    userID,
		UserName:  user.FullName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
