package checkout

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-storefront-api/internal/pkg/apperror"
	"go-storefront-api/internal/pkg/response"
)

type Handler struct {
	svc Service
	log *zap.Logger
}

func NewHandler(svc Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid checkout payload", err.Error())
		return
	}

	placed, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, placed, nil)
}

func (h *Handler) OrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "order id is required", nil)
		return
	}

	order, err := h.svc.OrderStatus(c.Request.Context(), orderID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, order, nil)
}
