package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onimix/artist-platform/internal/catalog"
	"github.com/onimix/artist-platform/internal/store"
)

func newTestService(t *testing.T) (catalog.Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return catalog.NewService(st), st
}

func createProduct(t *testing.T, svc catalog.Service, in catalog.CreateProductInput) *catalog.Product {
	t.Helper()
	if in.Name == "" {
		in.Name = "Sample Pack Vol. 1"
	}
	if in.Category == "" {
		in.Category = catalog.CategorySamples
	}
	if in.ProductType == "" {
		in.ProductType = catalog.TypeDigital
	}
	p, err := svc.CreateProduct(context.Background(), in)
	require.NoError(t, err)
	return p
}

func TestCatalogService_CreateProduct(t *testing.T) {
	tests := []struct {
		name    string
		in      catalog.CreateProductInput
		wantErr error
	}{
		{
			name: "ok",
			in: catalog.CreateProductInput{
				Name:        "Mixing Template",
				Price:       49.99,
				Category:    catalog.CategoryTechTools,
				ProductType: catalog.TypeDigital,
			},
		},
		{
			name:    "unknown_category",
			in:      catalog.CreateProductInput{Name: "x", Category: "vinyl", ProductType: catalog.TypeDigital},
			wantErr: catalog.ErrValidation,
		},
		{
			name:    "unknown_type",
			in:      catalog.CreateProductInput{Name: "x", Category: catalog.CategoryMerch, ProductType: "rental"},
			wantErr: catalog.ErrValidation,
		},
		{
			name: "discount_out_of_bounds",
			in: catalog.CreateProductInput{
				Name: "x", Category: catalog.CategoryMerch, ProductType: catalog.TypePhysical,
				DiscountPercentage: 120,
			},
			wantErr: catalog.ErrValidation,
		},
		{
			name: "negative_price",
			in: catalog.CreateProductInput{
				Name: "x", Category: catalog.CategoryMerch, ProductType: catalog.TypePhysical,
				Price: -5,
			},
			wantErr: catalog.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			got, err := svc.CreateProduct(context.Background(), tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.IsActive, "new products start active")
			assert.Zero(t, got.SoldCount)
			assert.Zero(t, got.Rating)
		})
	}
}

func TestCatalogService_ListProducts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	active := createProduct(t, svc, catalog.CreateProductInput{Name: "Active Merch", Category: catalog.CategoryMerch, ProductType: catalog.TypePhysical})
	createProduct(t, svc, catalog.CreateProductInput{Name: "Featured Kit", Category: catalog.CategorySamples, ProductType: catalog.TypeDigital, IsFeatured: true})

	inactive := false
	_, err := svc.UpdateProduct(ctx, active.ID, catalog.UpdateProductInput{IsActive: &inactive})
	require.NoError(t, err)

	all, err := svc.ListProducts(ctx, catalog.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	activeOnly, err := svc.ListProducts(ctx, catalog.ProductFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "Featured Kit", activeOnly[0].Name)

	featured, err := svc.ListProducts(ctx, catalog.ProductFilter{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 1)

	merch, err := svc.ListProducts(ctx, catalog.ProductFilter{Category: catalog.CategoryMerch})
	require.NoError(t, err)
	require.Len(t, merch, 1)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := createProduct(t, svc, catalog.CreateProductInput{Price: 20})

	newPrice := 25.0
	discount := 15.0
	updated, err := svc.UpdateProduct(ctx, p.ID, catalog.UpdateProductInput{Price: &newPrice, DiscountPercentage: &discount})
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.Price)
	assert.Equal(t, 15.0, updated.DiscountPercentage)

	bad := 101.0
	_, err = svc.UpdateProduct(ctx, p.ID, catalog.UpdateProductInput{DiscountPercentage: &bad})
	assert.ErrorIs(t, err, catalog.ErrValidation)

	_, err = svc.UpdateProduct(ctx, "missing", catalog.UpdateProductInput{Price: &newPrice})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCatalogService_Reviews_RecomputeRating(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := createProduct(t, svc, catalog.CreateProductInput{})

	for _, rating := range []int{3, 4, 5} {
		_, err := svc.CreateReview(ctx, p.ID, catalog.CreateReviewInput{
			CustomerName: "fan",
			Rating:       rating,
		})
		require.NoError(t, err)
	}

	got, err := svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Rating)
	assert.Equal(t, 3, got.ReviewCount)

	// A fourth review drags the mean down; stored value is the exact mean of
	// all stored reviews, rounded to one decimal.
	_, err = svc.CreateReview(ctx, p.ID, catalog.CreateReviewInput{CustomerName: "critic", Rating: 2})
	require.NoError(t, err)

	got, err = svc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got.Rating)
	assert.Equal(t, 4, got.ReviewCount)
}

func TestCatalogService_CreateReview_Validation(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	p := createProduct(t, svc, catalog.CreateProductInput{})

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(ctx, p.ID, catalog.CreateReviewInput{CustomerName: "fan", Rating: rating})
		assert.ErrorIs(t, err, catalog.ErrValidation, "rating %d", rating)
	}

	n, err := st.Count(ctx, catalog.ReviewCollection, store.Filter{})
	require.NoError(t, err)
	assert.Zero(t, n, "rejected reviews must write nothing")

	_, err = svc.CreateReview(ctx, "missing-product", catalog.CreateReviewInput{CustomerName: "fan", Rating: 5})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)
}

func TestCatalogService_ListReviews(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p := createProduct(t, svc, catalog.CreateProductInput{})
	other := createProduct(t, svc, catalog.CreateProductInput{Name: "Other"})

	_, err := svc.CreateReview(ctx, p.ID, catalog.CreateReviewInput{CustomerName: "a", Rating: 5})
	require.NoError(t, err)
	_, err = svc.CreateReview(ctx, other.ID, catalog.CreateReviewInput{CustomerName: "b", Rating: 1})
	require.NoError(t, err)

	reviews, err := svc.ListReviews(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "a", reviews[0].CustomerName)
}
