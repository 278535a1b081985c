package wishlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"
)

type catalogReader interface {
	Get(id catalog.ID) (catalog.Product, bool)
}

type Handler struct {
	store   *Store
	catalog catalogReader
}

func NewHandler(store *Store, cat catalogReader) *Handler {
	return &Handler{store: store, catalog: cat}
}

func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Snapshot(), nil)
}

func (h *Handler) Toggle(c *gin.Context) {
	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid toggle payload", err.Error())
		return
	}

	product, ok := h.catalog.Get(req.ProductID)
	if !ok {
		response.FromError(c, catalog.ErrProductNotFound)
		return
	}

	var selected *catalog.Variant
	if req.VariantID != 0 {
		selected = product.Variant(req.VariantID)
		if selected == nil {
			response.FromError(c, catalog.ErrProductNotFound)
			return
		}
	}

	added := h.store.Toggle(c.Request.Context(), product, selected)
	response.Success(c, http.StatusOK, ToggleResponse{InWishlist: added}, nil)
}

// Contains answers the heart-icon membership query:
// GET /wishlist/contains?productId=..&variantId=..
func (h *Handler) Contains(c *gin.Context) {
	productID, err := catalog.ParseID(c.Query("productId"))
	if err != nil {
		response.FromError(c, ErrInvalidQuery)
		return
	}

	variantID := catalog.ID(0)
	if raw := c.Query("variantId"); raw != "" {
		variantID, err = catalog.ParseID(raw)
		if err != nil {
			response.FromError(c, ErrInvalidQuery)
			return
		}
	}

	response.Success(c, http.StatusOK, ContainsResponse{
		Contains: h.store.Contains(productID, variantID),
	}, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	h.store.Clear(c.Request.Context())
	response.Success(c, http.StatusOK, h.store.Snapshot(), nil)
}
