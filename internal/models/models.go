package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type Product struct {
	ID                uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string             `gorm:"not null"                 json:"title"`
	Description       string             `gorm:"not null"                 json:"description"`
	Price             float64            `gorm:"not null;check:price >= 0" json:"price"`
	Image             string             `gorm:"default:'https://via.placeholder.com/300'" json:"image"`
	Images            pq.StringArray     `gorm:"type:text[]"              json:"images"`
	Stock             int                `gorm:"not null;default:0"       json:"stock"`
	Category          string             `gorm:"index;not null"           json:"category"`
	QuantityDiscounts []QuantityDiscount `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"quantity_discounts"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// QuantityDiscount is a tiered price break: orders of at least MinQty units
// qualify for DiscountPercent off the unit price.
type QuantityDiscount struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	ProductID       uint    `gorm:"index;not null" json:"product_id"`
	MinQty          int     `gorm:"not null;check:min_qty >= 0" json:"min_qty"`
	DiscountPercent float64 `gorm:"not null;check:discount_percent >= 0 AND discount_percent <= 100" json:"discount_percent"`
}

const (
	PaymentCOD    = "COD"
	PaymentOnline = "ONLINE"
)

const (
	OrderStatusPendingCOD = "Pending - Cash on Delivery"
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPendingCOD, OrderStatusPending, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ShippingAddress is snapshotted into the order at placement time.
type ShippingAddress struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

type Order struct {
	ID              uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint               `gorm:"index;not null"           json:"user_id"`
	User            *User              `gorm:"foreignKey:UserID"        json:"user,omitempty"`
	Items           []OrderItem        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress ShippingAddress    `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string             `gorm:"not null"                 json:"payment_method"`
	Total           float64            `gorm:"not null"                 json:"total"`
	ShippingCharges float64            `gorm:"not null;default:0"       json:"shipping_charges"`
	Status          string             `gorm:"not null"                 json:"status"`
	StatusHistory   []OrderStatusEvent `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"status_history"`
	PaymentIntentID string             `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OrderItem snapshots title and unit price at placement time so later product
// edits never change historical orders.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey"     json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"order_id"`
	ProductID uint     `gorm:"not null"       json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Title     string   `gorm:"not null"       json:"title"`
	Quantity  int      `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     float64  `gorm:"not null"       json:"price"`
}

// OrderStatusEvent rows are append-only, one per placement or status change.
type OrderStatusEvent struct {
	ID      uint      `gorm:"primaryKey"     json:"id"`
	OrderID uint      `gorm:"index;not null" json:"order_id"`
	Status  string    `gorm:"not null"       json:"status"`
	Date    time.Time `gorm:"not null"       json:"date"`
	Note    string    `json:"note"`
}

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code           string     `gorm:"uniqueIndex;not null"     json:"code"`
	DiscountType   string     `gorm:"not null"                 json:"discount_type"`
	DiscountValue  float64    `gorm:"not null;check:discount_value >= 0" json:"discount_value"`
	MinOrderAmount float64    `gorm:"not null;default:0"       json:"min_order_amount"`
	MaxUses        *int       `json:"max_uses"`
	UsedCount      int        `gorm:"not null;default:0"       json:"used_count"`
	ExpiresAt      *time.Time `json:"expires_at"`
	IsActive       bool       `gorm:"not null"                 json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_reviews_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_reviews_user_product;not null" json:"product_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WishlistItem is the relational rendering of the per-user wishlist set, one
// row per (user, product) pair.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"user_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_wishlist_user_product;not null" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Address struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	FullName  string    `gorm:"not null"       json:"full_name"`
	Address   string    `gorm:"not null"       json:"address"`
	City      string    `gorm:"not null"       json:"city"`
	State     string    `gorm:"not null"       json:"state"`
	ZipCode   string    `gorm:"not null"       json:"zip_code"`
	Phone     string    `gorm:"not null"       json:"phone"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Setting is the configuration singleton: exactly one row, fixed primary key,
// arbitrary keys stored as a JSON blob and upserted on write.
const SettingsID = 1

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Data      []byte    `gorm:"type:jsonb" json:"-"`
	UpdatedAt time.Time `json:"-"`
}
