package cart

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrInvalidLineKey = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid line item key",
		http.StatusBadRequest,
	)

	ErrStockExceeded = apperror.New(
		apperror.CodeStockExceeded,
		"Requested quantity exceeds available stock",
		http.StatusConflict,
	)
)
