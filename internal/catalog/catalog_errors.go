package catalog

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid product ID",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found",
		http.StatusNotFound,
	)

	ErrResyncFailed = apperror.New(
		apperror.CodeUpstream,
		"Failed to refresh catalog from backend",
		http.StatusBadGateway,
	)
)
