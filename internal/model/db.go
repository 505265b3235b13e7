package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. PENDING is the initial state; DELIVERED, CANCELLED and
// REJECTED are terminal.
const (
	OrderPending   = "PENDING"
	OrderConfirmed = "CONFIRMED"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
	OrderRejected  = "REJECTED"
)

const (
	ReturnTypeReturn      = "RETURN"
	ReturnTypeReplacement = "REPLACEMENT"

	ReturnPending = "PENDING"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"`
	Name     string `gorm:"size:128" json:"name"`
	Phone    string `gorm:"size:32" json:"phone"`
	Address  string `json:"address"`
	Banned   bool   `gorm:"not null;default:false" json:"banned"`
}

type Seller struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:128;not null" json:"-"`
	Name     string `gorm:"size:128" json:"name"`
	Email    string `gorm:"size:128;uniqueIndex;not null" json:"email"`
}

type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:128;not null" json:"-"`
	Name     string `gorm:"size:128" json:"name"`
	Email    string `gorm:"size:128" json:"email"`
}

// AdminEmail is the allowlist of addresses permitted to act as admin.
type AdminEmail struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Email  string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Active bool   `gorm:"not null" json:"active"`
}

type Category struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"size:128;not null" json:"name"`
	Description      string `json:"description"`
	CategoryImageURL string `json:"categoryImageUrl"`
	BannerImageURL   string `json:"bannerImageUrl"`
	Color            string `gorm:"size:16" json:"color"`
}

type Product struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"size:128;not null" json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Unit            string          `gorm:"size:32" json:"unit"` // kg, pack, numbers, grams
	ProductImageURL string          `json:"productImageUrl"`
	CategoryID      *uint           `gorm:"index" json:"categoryId"`
	Category        *Category       `json:"category,omitempty"`
	SellerID        *uint           `gorm:"index" json:"sellerId"`
	Seller          *Seller         `json:"seller,omitempty"`
	Returnable      bool            `gorm:"not null;default:false" json:"returnable"`
	ReturnDays      int             `gorm:"not null;default:0" json:"returnDays"`
	Replaceable     bool            `gorm:"not null;default:false" json:"replaceable"`
	ReplacementDays int             `gorm:"not null;default:0" json:"replacementDays"`
	CardColor       string          `gorm:"size:16" json:"cardColor"`
}

// Order is a single-seller aggregate: every item under it references a
// product belonging to the order's seller (or no seller at all).
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Status          string          `gorm:"size:32;index;not null" json:"status"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt       time.Time       `json:"createdAt"`
	DeliveredAt     *time.Time      `json:"deliveredAt"`
	PaymentMethod   string          `gorm:"size:64" json:"paymentMethod"`
	TransactionID   string          `gorm:"size:128" json:"transactionId"`
	RejectionReason string          `json:"rejectionReason"`
	UserID          uint            `gorm:"index;not null" json:"-"`
	User            *User           `json:"user,omitempty"`
	SellerID        *uint           `gorm:"index" json:"-"`
	Seller          *Seller         `json:"seller,omitempty"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems,omitempty"`
}

// OrderItem copies the price the buyer saw at checkout; it is never re-read
// from the live product.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"orderId"`
	ProductID uint            `gorm:"index;not null" json:"productId"`
	Product   *Product        `json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}

type Return struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:32;not null" json:"type"` // RETURN or REPLACEMENT
	Status    string    `gorm:"size:32;not null" json:"status"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	OrderID   uint      `gorm:"index;not null" json:"orderId"`
	Order     *Order    `json:"order,omitempty"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Product   *Product  `json:"product,omitempty"`
}

type Address struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Type        string `gorm:"size:32;not null" json:"type"`
	FullAddress string `gorm:"not null" json:"fullAddress"`
	UserID      uint   `gorm:"index;not null" json:"-"`
}

type Payment struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Type       string `gorm:"size:32;not null" json:"type"`
	LastFour   string `gorm:"size:8" json:"lastFour"`
	ExpiryDate string `gorm:"size:16" json:"expiryDate"`
	UpiID      string `gorm:"size:64" json:"upiId"`
	UserID     uint   `gorm:"index;not null" json:"-"`
}
