package catalog

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-storefront-api/internal/pkg/response"
)

// ProductSource is what Resync needs from the bulk-fetch client.
type ProductSource interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

type Handler struct {
	store   *Store
	fetcher ProductSource
	log     *zap.Logger
}

func NewHandler(store *Store, fetcher ProductSource, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: store, fetcher: fetcher, log: log}
}

// List returns the catalog snapshot, paginated.
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	products := h.store.List()
	total := len(products)

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	response.Success(c, http.StatusOK, products[start:end], &response.Pagination{
		Page:            page,
		PageSize:        limit,
		TotalItems:      int64(total),
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	})
}

// Detail returns one product and marks it as the currently-viewed detail.
func (h *Handler) Detail(c *gin.Context) {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		response.FromError(c, ErrInvalidProductID)
		return
	}

	product, ok := h.store.Select(id)
	if !ok {
		response.FromError(c, ErrProductNotFound)
		return
	}

	response.Success(c, http.StatusOK, product, nil)
}

// Resync re-runs the bulk fetch on demand. The realtime channel does not
// replay missed events, so this is the only way to recover after a long
// disconnect.
func (h *Handler) Resync(c *gin.Context) {
	products, err := h.fetcher.FetchProducts(c.Request.Context())
	if err != nil {
		h.log.Error("catalog resync failed", zap.Error(err))
		response.FromError(c, ErrResyncFailed)
		return
	}

	h.store.Replace(products)
	response.Success(c, http.StatusOK, gin.H{"products": len(products)}, nil)
}
