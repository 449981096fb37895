package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

// ListByProduct returns the product's reviews newest-first plus the average
// rating rounded to one decimal.
func (s *ReviewService) ListByProduct(ctx context.Context, productID uint) (*transport.ProductReviews, error) {
	reviews, err := s.Repo.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var avg float64
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		avg = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	}

	return &transport.ProductReviews{Reviews: reviews, AvgRating: avg}, nil
}

// Upsert writes the requester's review for a product: a second review by the
// same user for the same product updates the first in place.
func (s *ReviewService) Upsert(ctx context.Context, userID uint, req transport.ReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if _, err := s.Repo.GetProduct(ctx, req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	review, err := s.Repo.GetReviewByUserAndProduct(ctx, userID, req.ProductID)
	switch {
	case err == nil:
		review.Rating = req.Rating
		review.Comment = req.Comment
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = &models.Review{
			UserID:    userID,
			ProductID: req.ProductID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
	default:
		return nil, err
	}

	if err := s.Repo.SaveReview(ctx, review); err != nil {
		return nil, err
	}

	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	review.User = user

	return review, nil
}

// Delete removes a review; only its author or an admin may do so.
func (s *ReviewService) Delete(ctx context.Context, id, requesterID uint, requesterRole string) error {
	review, err := s.Repo.GetReview(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: review not found", ErrNotFound)
		}
		return err
	}

	if review.UserID != requesterID && requesterRole != models.RoleAdmin {
		return fmt.Errorf("%w: not authorized", ErrForbidden)
	}

	return s.Repo.DeleteReview(ctx, id)
}
