package wishlist

import "go-storefront-api/internal/catalog"

// ==================== REQUEST STRUCTS ====================

type ToggleRequest struct {
	ProductID catalog.ID `json:"productId" binding:"required"`
	VariantID catalog.ID `json:"variantId"`
}

// ==================== RESPONSE STRUCTS ====================

type ToggleResponse struct {
	InWishlist bool `json:"inWishlist"`
}

type ContainsResponse struct {
	Contains bool `json:"contains"`
}
