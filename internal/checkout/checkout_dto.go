package checkout

import "go-storefront-api/internal/catalog"

// DeliveryFee is the flat fee added to every order's grand total.
const DeliveryFee = 50.0

// ==================== REQUEST STRUCTS ====================

// CheckoutRequest carries the delivery address plus, for the buy-now flow,
// one transient line item that bypasses the cart.
type CheckoutRequest struct {
	FullName    string   `json:"fullName" validate:"required"`
	Phone       string   `json:"phone" validate:"required"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Address     string   `json:"address" validate:"required"`
	Landmark    string   `json:"landmark"`
	AddressType string   `json:"addressType"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state"`
	Pincode     string   `json:"pincode" validate:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	Item *BuyNowItem `json:"item"`
}

type BuyNowItem struct {
	ProductID   catalog.ID `json:"productId" validate:"required"`
	VariantID   catalog.ID `json:"variantId"`
	Name        string     `json:"name" validate:"required"`
	VariantName string     `json:"variantName"`
	Price       float64    `json:"price" validate:"gte=0"`
	Quantity    int        `json:"quantity" validate:"gte=1"`
	Image       string     `json:"image"`
}

// ==================== UPSTREAM PAYLOADS ====================

// OrderRequest is the order-submission payload sent to the commerce backend.
type OrderRequest struct {
	FullName    string   `json:"fullName"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	Landmark    string   `json:"landmark,omitempty"`
	AddressType string   `json:"addressType"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Pincode     string   `json:"pincode"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`

	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderLine `json:"items"`
}

type OrderLine struct {
	ProductID    catalog.ID  `json:"productId"`
	VariantID    *catalog.ID `json:"variantId"`
	VariantName  *string     `json:"variantName"`
	ProductName  string      `json:"productName"`
	Price        float64     `json:"price"`
	Quantity     int         `json:"quantity"`
	ProductImage string      `json:"productImage,omitempty"`
}

// OrderResponse is what the backend returns on a confirmed submission. The
// order id routes the client to the order-status view.
type OrderResponse struct {
	OrderID     catalog.ID `json:"orderId"`
	TotalAmount float64    `json:"totalAmount,omitempty"`
}
