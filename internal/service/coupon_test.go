package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maaz9703/maazweb-api/internal/models"
	"github.com/Maaz9703/maazweb-api/internal/transport"
)

func intPtr(v int) *int             { return &v }
func timePtr(v time.Time) *time.Time { return &v }
func boolPtr(v bool) *bool           { return &v }

func TestCouponService_Validate(t *testing.T) {
	r := newTestRepo(t)
	svc := &CouponService{Repo: r}
	ctx := context.Background()

	seed := []models.Coupon{
		{Code: "SAVE10", DiscountType: models.DiscountPercentage, DiscountValue: 10, IsActive: true},
		{Code: "FLAT50", DiscountType: models.DiscountFixed, DiscountValue: 50, IsActive: true},
		{Code: "BIGSPENDER", DiscountType: models.DiscountPercentage, DiscountValue: 20, MinOrderAmount: 500, IsActive: true},
		{Code: "EXPIRED", DiscountType: models.DiscountFixed, DiscountValue: 5, ExpiresAt: timePtr(time.Now().Add(-time.Hour)), IsActive: true},
		{Code: "USEDUP", DiscountType: models.DiscountFixed, DiscountValue: 5, MaxUses: intPtr(3), UsedCount: 3, IsActive: true},
		{Code: "DISABLED", DiscountType: models.DiscountFixed, DiscountValue: 5, IsActive: false},
	}
	for i := range seed {
		require.NoError(t, r.CreateCoupon(ctx, &seed[i]))
	}

	tests := []struct {
		name        string
		code        string
		orderTotal  float64
		wantErr     bool
		wantMessage string
		wantFinal   float64
	}{
		{name: "percentage", code: "SAVE10", orderTotal: 200, wantFinal: 180},
		{name: "lowercase code matches", code: "save10", orderTotal: 200, wantFinal: 180},
		{name: "fixed", code: "FLAT50", orderTotal: 120, wantFinal: 70},
		{name: "fixed capped at order total", code: "FLAT50", orderTotal: 30, wantFinal: 0},
		{name: "unknown code", code: "NOPE", orderTotal: 100, wantErr: true, wantMessage: "invalid or expired coupon"},
		{name: "inactive", code: "DISABLED", orderTotal: 100, wantErr: true, wantMessage: "invalid or expired coupon"},
		{name: "expired", code: "EXPIRED", orderTotal: 100, wantErr: true, wantMessage: "coupon has expired"},
		{name: "limit reached", code: "USEDUP", orderTotal: 100, wantErr: true, wantMessage: "coupon limit reached"},
		{name: "below minimum", code: "BIGSPENDER", orderTotal: 100, wantErr: true, wantMessage: "minimum order amount is $500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Validate(ctx, tt.code, tt.orderTotal)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Contains(t, err.Error(), tt.wantMessage)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantFinal, res.FinalAmount, 1e-9)
			assert.InDelta(t, tt.orderTotal-tt.wantFinal, res.Discount, 1e-9)
		})
	}
}

// Validation reads usedCount but nothing increments it, so the cap only
// blocks coupons whose counter was raised out of band.
func TestCouponService_Validate_DoesNotIncrementUsage(t *testing.T) {
	r := newTestRepo(t)
	svc := &CouponService{Repo: r}
	ctx := context.Background()

	coupon := models.Coupon{Code: "ONCE", DiscountType: models.DiscountFixed, DiscountValue: 5, MaxUses: intPtr(1), IsActive: true}
	require.NoError(t, r.CreateCoupon(ctx, &coupon))

	for range 3 {
		_, err := svc.Validate(ctx, "ONCE", 100)
		require.NoError(t, err)
	}

	reread, err := r.GetActiveCouponByCode(ctx, "ONCE")
	require.NoError(t, err)
	assert.Zero(t, reread.UsedCount)
}

func TestCouponService_Create(t *testing.T) {
	r := newTestRepo(t)
	svc := &CouponService{Repo: r}
	ctx := context.Background()

	coupon, err := svc.Create(ctx, transport.CreateCouponRequest{
		Code:          "welcome20",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME20", coupon.Code)
	assert.True(t, coupon.IsActive)

	_, err = svc.Create(ctx, transport.CreateCouponRequest{
		Code:          "WELCOME20",
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(ctx, transport.CreateCouponRequest{
		Code:          "BAD",
		DiscountType:  "bogo",
		DiscountValue: 10,
	})
	assert.ErrorIs(t, err, ErrValidation)

	inactive, err := svc.Create(ctx, transport.CreateCouponRequest{
		Code:          "PAUSED",
		DiscountType:  models.DiscountFixed,
		DiscountValue: 5,
		IsActive:      boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)
}

func TestCouponService_Delete(t *testing.T) {
	r := newTestRepo(t)
	svc := &CouponService{Repo: r}
	ctx := context.Background()

	coupon := models.Coupon{Code: "GONE", DiscountType: models.DiscountFixed, DiscountValue: 5, IsActive: true}
	require.NoError(t, r.CreateCoupon(ctx, &coupon))

	require.NoError(t, svc.Delete(ctx, coupon.ID))
	assert.ErrorIs(t, svc.Delete(ctx, coupon.ID), ErrNotFound)
}
