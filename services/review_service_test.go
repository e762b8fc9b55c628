package services

import (
	"context"
	"testing"

	"ecommerce-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewFixture() (*ReviewService, *fakeReviewStore) {
	products := &fakeProducts{byID: map[int]*models.Product{
		1: {ID: 1, Name: "Espresso Beans", Slug: "espresso-beans", Price: price("19.99")},
	}}
	users := &fakeUsers{byID: map[int]*models.User{
		7: {ID: 7, Email: "ana@example.com", FullName: "Ana Silva", Role: "customer"},
	}}
	reviews := newFakeReviewStore()
	svc := &ReviewService{reviews: reviews, products: products, users: users}
	return svc, reviews
}

func TestCreateReview(t *testing.T) {
	svc, _ := newReviewFixture()

	review, err := svc.Create(context.Background(), 7, models.CreateReviewRequest{
		ProductID: 1, Rating: 4, Comment: "Rich and smooth.",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, review.UserID)
	assert.Equal(t, "Ana Silva", review.UserName)
	assert.Equal(t, 4, review.Rating)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	svc, _ := newReviewFixture()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Create(context.Background(), 7, models.CreateReviewRequest{ProductID: 1, Rating: rating})
		assert.ErrorIs(t, err, models.ErrValidation, "rating %d", rating)
	}
}

func TestCreateReviewUnknownProduct(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.Create(context.Background(), 7, models.CreateReviewRequest{ProductID: 999, Rating: 3})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateReviewDuplicatePairConflicts(t *testing.T) {
	svc, _ := newReviewFixture()

	_, err := svc.Create(context.Background(), 7, models.CreateReviewRequest{ProductID: 1, Rating: 5, Comment: "Great"})
	require.NoError(t, err)

	// Same (product, user) pair is rejected even with different content.
	_, err = svc.Create(context.Background(), 7, models.CreateReviewRequest{ProductID: 1, Rating: 1, Comment: "Changed my mind"})
	assert.ErrorIs(t, err, models.ErrConflict)
}
