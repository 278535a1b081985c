package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"
)

// catalogReader is what the handler needs from the catalog store to resolve
// add requests into (product, variant) snapshots.
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

func (h *Handler) Detail(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Snapshot(), nil)
}

func (h *Handler) Count(c *gin.Context) {
	response.Success(c, http.StatusOK, CartCountResponse{Count: h.store.Snapshot().TotalItems}, nil)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid add-to-cart payload", err.Error())
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

	if err := h.store.Add(c.Request.Context(), product, selected); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, h.store.Snapshot(), nil)
}

func (h *Handler) Increment(c *gin.Context) {
	key, err := catalog.ParseID(c.Param("key"))
	if err != nil {
		response.FromError(c, ErrInvalidLineKey)
		return
	}

	if err := h.store.Increase(c.Request.Context(), key); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, h.store.Snapshot(), nil)
}

func (h *Handler) Decrement(c *gin.Context) {
	key, err := catalog.ParseID(c.Param("key"))
	if err != nil {
		response.FromError(c, ErrInvalidLineKey)
		return
	}

	h.store.Decrease(c.Request.Context(), key)
	response.Success(c, http.StatusOK, h.store.Snapshot(), nil)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	key, err := catalog.ParseID(c.Param("key"))
	if err != nil {
		response.FromError(c, ErrInvalidLineKey)
		return
	}

	h.store.Remove(c.Request.Context(), key)
	response.Success(c, http.StatusOK, h.store.Snapshot(), nil)
}

func (h *Handler) Delete(c *gin.Context) {
	h.store.Clear(c.Request.Context())
	response.Success(c, http.StatusOK, h.store.Snapshot(), nil)
}
