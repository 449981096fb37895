package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/events"
	"github.com/Maaz9703/maazweb-api/internal/logging"
	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/search"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type ProductService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	Search   *search.Index
}

func (s *ProductService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// List returns the filtered catalog. When a search term is given and the
// Elasticsearch index is configured, the index answers; otherwise the filter
// runs as SQL.
func (s *ProductService) List(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	if f.Search != "" && s.Search.Enabled() {
		products, err := s.Search.Query(ctx, f.Search)
		if err == nil {
			return products, nil
		}
		logging.FromContext(ctx).Warn("search index query failed, falling back to sql",
			"error", err)
	}
	return s.Repo.ListProducts(ctx, f)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.Categories(ctx)
}

func validateProductRequest(req transport.ProductRequest) error {
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if req.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Stock < 0 {
		return fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}
	for _, d := range req.QuantityDiscounts {
		if d.MinQty < 0 {
			return fmt.Errorf("%w: min_qty must be >= 0", ErrValidation)
		}
		if d.DiscountPercent < 0 || d.DiscountPercent > 100 {
			return fmt.Errorf("%w: discount_percent must be between 0 and 100", ErrValidation)
		}
	}
	return nil
}

func discountsFromRequest(req transport.ProductRequest) []models.QuantityDiscount {
	discounts := make([]models.QuantityDiscount, 0, len(req.QuantityDiscounts))
	for _, d := range req.QuantityDiscounts {
		discounts = append(discounts, models.QuantityDiscount{
			MinQty:          d.MinQty,
			DiscountPercent: d.DiscountPercent,
		})
	}
	return discounts
}

func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:             req.Title,
		Description:       req.Description,
		Price:             req.Price,
		Image:             req.Image,
		Images:            pq.StringArray(req.Images),
		Stock:             req.Stock,
		Category:          req.Category,
		QuantityDiscounts: discountsFromRequest(req),
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	s.indexProduct(ctx, product)
	publish(ctx, s.Producer, events.TopicProductEvents, fmt.Sprint(product.ID), map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"title":     product.Title,
	})

	return product, nil
}

// Update is a full replace, matching PUT semantics.
func (s *ProductService) Update(ctx context.Context, id uint, req transport.ProductRequest) (*models.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	product.Title = req.Title
	product.Description = req.Description
	product.Price = req.Price
	product.Image = req.Image
	product.Images = pq.StringArray(req.Images)
	product.Stock = req.Stock
	product.Category = req.Category
	product.QuantityDiscounts = nil

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceQuantityDiscounts(ctx, id, discountsFromRequest(req)); err != nil {
		return nil, err
	}

	product, err = s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	s.indexProduct(ctx, product)
	publish(ctx, s.Producer, events.TopicProductEvents, fmt.Sprint(product.ID), map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"title":     product.Title,
	})

	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return err
	}

	if s.Search.Enabled() {
		if err := s.Search.Delete(ctx, id); err != nil {
			logging.FromContext(ctx).Warn("search index delete failed", "product_id", id, "error", err)
		}
	}
	publish(ctx, s.Producer, events.TopicProductEvents, fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	return nil
}

func (s *ProductService) indexProduct(ctx context.Context, product *models.Product) {
	if !s.Search.Enabled() {
		return
	}
	if err := s.Search.IndexProduct(ctx, product); err != nil {
		logging.FromContext(ctx).Warn("search index write failed",
			"product_id", product.ID, "error", err)
	}
}
