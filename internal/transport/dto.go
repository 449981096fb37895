package transport

import (
	"time"

	"github.com/Maaz9703/maazweb-api/internal/models"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKCount(data any, count int) Response {
	return Response{Success: true, Data: data, Count: &count}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type QuantityDiscountInput struct {
	MinQty          int     `json:"min_qty"`
	DiscountPercent float64 `json:"discount_percent"`
}

type ProductRequest struct {
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	Price             float64                 `json:"price"`
	Image             string                  `json:"image"`
	Images            []string                `json:"images"`
	Stock             int                     `json:"stock"`
	Category          string                  `json:"category"`
	QuantityDiscounts []QuantityDiscountInput `json:"quantity_discounts"`
}

type OrderItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest     `json:"items"`
	ShippingAddress models.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type ValidateCouponRequest struct {
	Code       string  `json:"code"`
	OrderTotal float64 `json:"order_total"`
}

type CouponValidation struct {
	Code        string  `json:"code"`
	Discount    float64 `json:"discount"`
	FinalAmount float64 `json:"final_amount"`
}

type CreateCouponRequest struct {
	Code           string     `json:"code"`
	DiscountType   string     `json:"discount_type"`
	DiscountValue  float64    `json:"discount_value"`
	MinOrderAmount float64    `json:"min_order_amount"`
	MaxUses        *int       `json:"max_uses"`
	ExpiresAt      *time.Time `json:"expires_at"`
	IsActive       *bool      `json:"is_active"`
}

type AddressRequest struct {
	FullName  string `json:"full_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Phone     string `json:"phone"`
	IsDefault bool   `json:"is_default"`
}

type ReviewRequest struct {
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type ProductReviews struct {
	Reviews   []models.Review `json:"reviews"`
	AvgRating float64         `json:"avg_rating"`
}

type WishlistAddRequest struct {
	ProductID uint `json:"product_id"`
}

type PaymentIntentRequest struct {
	Amount  float64 `json:"amount"`
	OrderID uint    `json:"order_id"`
}

type PaymentIntentResult struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}
