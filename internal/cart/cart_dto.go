package cart

import "go-storefront-api/internal/catalog"

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID catalog.ID `json:"productId" binding:"required"`
	VariantID catalog.ID `json:"variantId"`
}

// ==================== RESPONSE STRUCTS ====================

type CartCountResponse struct {
	Count int `json:"count"`
}
