package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

type CouponService struct {
	Repo *repo.GormRepo
}

// Validate checks a code against the eligibility rules and computes the
// discount. It never increments usedCount; no flow in the system does, so the
// maxUses cap is only ever checked here, not enforced end to end.
func (s *CouponService) Validate(ctx context.Context, code string, orderTotal float64) (*transport.CouponValidation, error) {
	coupon, err := s.Repo.GetActiveCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid or expired coupon", ErrValidation)
		}
		return nil, err
	}

	if coupon.ExpiresAt != nil && time.Now().After(*coupon.ExpiresAt) {
		return nil, fmt.Errorf("%w: coupon has expired", ErrValidation)
	}
	if coupon.MaxUses != nil && coupon.UsedCount >= *coupon.MaxUses {
		return nil, fmt.Errorf("%w: coupon limit reached", ErrValidation)
	}
	if orderTotal < coupon.MinOrderAmount {
		return nil, fmt.Errorf("%w: minimum order amount is $%g", ErrValidation, coupon.MinOrderAmount)
	}

	var discount float64
	if coupon.DiscountType == models.DiscountPercentage {
		discount = orderTotal * coupon.DiscountValue / 100
	} else {
		discount = min(coupon.DiscountValue, orderTotal)
	}

	return &transport.CouponValidation{
		Code:        coupon.Code,
		Discount:    discount,
		FinalAmount: orderTotal - discount,
	}, nil
}

func (s *CouponService) List(ctx context.Context) ([]models.Coupon, error) {
	return s.Repo.ListCoupons(ctx)
}

func (s *CouponService) Create(ctx context.Context, req transport.CreateCouponRequest) (*models.Coupon, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrValidation)
	}
	if req.DiscountType != models.DiscountPercentage && req.DiscountType != models.DiscountFixed {
		return nil, fmt.Errorf("%w: discount type must be percentage or fixed", ErrValidation)
	}
	if req.DiscountValue < 0 {
		return nil, fmt.Errorf("%w: discount value must be >= 0", ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	coupon := &models.Coupon{
		Code:           req.Code,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		MaxUses:        req.MaxUses,
		ExpiresAt:      req.ExpiresAt,
		IsActive:       isActive,
	}
	if err := s.Repo.CreateCoupon(ctx, coupon); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: coupon code already exists", ErrConflict)
		}
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) Delete(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteCoupon(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: coupon not found", ErrNotFound)
		}
		return err
	}
	return nil
}
