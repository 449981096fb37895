package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

func testProductRequest(title string) transport.ProductRequest {
	return transport.ProductRequest{
		Title:       title,
		Description: "a product",
		Price:       10,
		Stock:       5,
		Category:    "Test",
	}
}

func TestProductService_CreateAndGet(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	req := testProductRequest("Mug")
	req.QuantityDiscounts = []transport.QuantityDiscountInput{{MinQty: 3, DiscountPercent: 15}}

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.Title)
	require.Len(t, got.QuantityDiscounts, 1)
	assert.Equal(t, 3, got.QuantityDiscounts[0].MinQty)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_CreateValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*transport.ProductRequest)
	}{
		{"missing title", func(r *transport.ProductRequest) { r.Title = "" }},
		{"missing description", func(r *transport.ProductRequest) { r.Description = "" }},
		{"missing category", func(r *transport.ProductRequest) { r.Category = "" }},
		{"negative price", func(r *transport.ProductRequest) { r.Price = -1 }},
		{"negative stock", func(r *transport.ProductRequest) { r.Stock = -1 }},
		{"discount over 100", func(r *transport.ProductRequest) {
			r.QuantityDiscounts = []transport.QuantityDiscountInput{{MinQty: 1, DiscountPercent: 101}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testProductRequest("Mug")
			tt.mutate(&req)
			_, err := svc.Create(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductService_UpdateReplacesDiscounts(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	req := testProductRequest("Mug")
	req.QuantityDiscounts = []transport.QuantityDiscountInput{
		{MinQty: 2, DiscountPercent: 5},
		{MinQty: 5, DiscountPercent: 10},
	}
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	update := testProductRequest("Mug v2")
	update.Price = 15
	update.QuantityDiscounts = []transport.QuantityDiscountInput{{MinQty: 10, DiscountPercent: 20}}

	updated, err := svc.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Mug v2", updated.Title)
	assert.Equal(t, 15.0, updated.Price)
	require.Len(t, updated.QuantityDiscounts, 1)
	assert.Equal(t, 10, updated.QuantityDiscounts[0].MinQty)

	_, err = svc.Update(ctx, 9999, update)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_Delete(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	created, err := svc.Create(ctx, testProductRequest("Mug"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestProductService_ListFilters(t *testing.T) {
	r := newTestRepo(t)
	svc := &ProductService{Repo: r}
	ctx := context.Background()

	mug := testProductRequest("Ceramic Mug")
	mug.Category = "Home"
	mug.Price = 12.50
	shoes := testProductRequest("Running Shoes")
	shoes.Category = "Sports"
	shoes.Price = 64
	tent := testProductRequest("Camping Tent")
	tent.Category = "Sports"
	tent.Price = 150

	for _, req := range []transport.ProductRequest{mug, shoes, tent} {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	byCategory, err := svc.List(ctx, repo.ProductFilter{Category: "Sports"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	bySearch, err := svc.List(ctx, repo.ProductFilter{Search: "mug"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Ceramic Mug", bySearch[0].Title)

	byPrice, err := svc.List(ctx, repo.ProductFilter{Sort: "price"})
	require.NoError(t, err)
	require.Len(t, byPrice, 3)
	assert.Equal(t, 12.50, byPrice[0].Price)

	byPriceDesc, err := svc.List(ctx, repo.ProductFilter{Sort: "-price"})
	require.NoError(t, err)
	assert.Equal(t, 150.0, byPriceDesc[0].Price)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Home", "Sports"}, categories)
}
