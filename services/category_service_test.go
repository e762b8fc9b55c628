package services

import (
	"context"
	"testing"

	"ecommerce-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryFixture() (*CategoryService, *fakeCategoryStore, *fakeProductStore) {
	cats := newFakeCategoryStore()
	products := newFakeProductStore()
	svc := &CategoryService{categories: cats, products: products}
	return svc, cats, products
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	cat, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Fresh Fruit"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh-fruit", cat.Slug)
}

func TestCreateCategorySlugCollisionGetsSuffix(t *testing.T) {
	svc, cats, _ := newCategoryFixture()

	require.NoError(t, cats.Create(context.Background(), &models.Category{Name: "Fresh Fruit", Slug: "fresh-fruit"}))

	cat, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Fresh  Fruit!"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh-fruit-2", cat.Slug)

	cat, err = svc.Create(context.Background(), models.CreateCategoryRequest{Name: "FRESH fruit?"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh-fruit-3", cat.Slug)
}

func TestCreateCategoryExplicitSlugWins(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	cat, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Fresh Fruit", Slug: "fruit"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fruit", cat.Slug)
}

func TestCreateCategoryDuplicateNameConflicts(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	_, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Dairy"}, nil)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Dairy", Slug: "dairy-two"}, nil)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestUpdateCategoryRederivesWithoutSelfCollision(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	cat, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Fresh Fruit"}, nil)
	require.NoError(t, err)

	// Renaming back to the same name must not probe past its own slug.
	name := "Fresh Fruit"
	updated, err := svc.Update(context.Background(), cat.Slug, models.UpdateCategoryRequest{Name: &name}, nil)
	require.NoError(t, err)
	assert.Equal(t, "fresh-fruit", updated.Slug)
}

func TestUpdateCategoryUnknownSlug(t *testing.T) {
	svc, _, _ := newCategoryFixture()

	name := "Anything"
	_, err := svc.Update(context.Background(), "missing", models.UpdateCategoryRequest{Name: &name}, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCategoryDetailListsProducts(t *testing.T) {
	svc, cats, products := newCategoryFixture()

	cat := &models.Category{Name: "Coffee", Slug: "coffee"}
	require.NoError(t, cats.Create(context.Background(), cat))

	require.NoError(t, products.Create(context.Background(), &models.Product{
		Name: "Espresso Beans", Slug: "espresso-beans", Price: price("19.99"), CategoryID: &cat.ID,
	}))
	require.NoError(t, products.Create(context.Background(), &models.Product{
		Name: "Decaf Beans", Slug: "decaf-beans", Price: price("17.99"),
	}))

	detail, err := svc.Get(context.Background(), "coffee")
	require.NoError(t, err)
	require.Len(t, detail.Products, 1)
	assert.Equal(t, "espresso-beans", detail.Products[0].Slug)
}
