package dto

import (
	"marketplace-backend/internal/model"

	"github.com/shopspring/decimal"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type SellerLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SellerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type SellerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}

type UserProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UserProfileResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Banned  bool   `json:"banned"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

type ProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Unit            string          `json:"unit"`
	CategoryID      *uint           `json:"categoryId"`
	SellerEmail     string          `json:"sellerEmail"`
	Returnable      bool            `json:"returnable"`
	ReturnDays      int             `json:"returnDays"`
	Replaceable     bool            `json:"replaceable"`
	ReplacementDays int             `json:"replacementDays"`
	CardColor       string          `json:"cardColor"`
}

type CheckoutItem struct {
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	PaymentMethod string         `json:"paymentMethod"`
	TransactionID string         `json:"transactionId"`
}

type CheckoutResponse struct {
	OrderIDs []uint `json:"orderIds"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderRejectRequest struct {
	Reason string `json:"reason"`
}

type SellerRevenue struct {
	Revenue    decimal.Decimal `json:"revenue"`
	Orders     int             `json:"orders"`
	SellerName string          `json:"sellerName"`
}

type RevenueResponse struct {
	TotalRevenue         decimal.Decimal          `json:"totalRevenue"`
	DeliveredOrdersCount int                      `json:"deliveredOrdersCount"`
	SellerRevenue        map[string]SellerRevenue `json:"sellerRevenue"`
	DeliveredOrders      []*model.Order           `json:"deliveredOrders"`
}

type ReturnCreateRequest struct {
	OrderID   uint   `json:"orderId"`
	UserEmail string `json:"userEmail"`
	Reason    string `json:"reason"`
}

// ReturnDetailRequest is the detailed path: the caller names the product and
// whether they want a return or a replacement.
type ReturnDetailRequest struct {
	OrderID   uint   `json:"orderId"`
	ProductID uint   `json:"productId"`
	Type      string `json:"type"`
	Reason    string `json:"reason"`
}

type ReturnStatusRequest struct {
	Status string `json:"status"`
}

type AddressRequest struct {
	Type        string `json:"type"`
	FullAddress string `json:"fullAddress"`
}

type PaymentRequest struct {
	Type       string `json:"type"`
	LastFour   string `json:"lastFour"`
	ExpiryDate string `json:"expiryDate"`
	UpiID      string `json:"upiId"`
}

type BanRequest struct {
	Banned bool `json:"banned"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
}
