package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

// List returns the wishlisted products themselves, matching the API shape of
// the per-user product set.
func (s *WishlistService) List(ctx context.Context, userID uint) ([]models.Product, error) {
	items, err := s.Repo.ListWishlist(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(items))
	for _, item := range items {
		if item.Product != nil {
			products = append(products, *item.Product)
		}
	}
	return products, nil
}

func (s *WishlistService) Add(ctx context.Context, userID, productID uint) ([]models.Product, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	exists, err := s.Repo.WishlistContains(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: product already in wishlist", ErrValidation)
	}

	item := &models.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.Repo.AddWishlistItem(ctx, item); err != nil {
		return nil, err
	}

	return s.List(ctx, userID)
}

func (s *WishlistService) Remove(ctx context.Context, userID, productID uint) ([]models.Product, error) {
	if err := s.Repo.RemoveWishlistItem(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}
