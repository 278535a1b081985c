package wishlist

import (
	"net/http"

	"go-storefront-api/internal/pkg/apperror"
)

var ErrInvalidQuery = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid wishlist query",
	http.StatusBadRequest,
)
