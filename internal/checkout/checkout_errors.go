package checkout

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"go-storefront-api/internal/pkg/apperror"
)

var (
	ErrEmptyCart     = apperror.New(apperror.CodeInvalidInput, "cart is empty, nothing to check out", http.StatusBadRequest)
	ErrOrderFailed   = apperror.New(apperror.CodeUpstream, "order could not be placed", http.StatusBadGateway)
	ErrOrderNotFound = apperror.New(apperror.CodeNotFound, "order not found", http.StatusNotFound)
)

func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.New(apperror.CodeInvalidInput, "invalid checkout payload", http.StatusBadRequest)
	}
	f := verrs[0]
	return apperror.New(apperror.CodeInvalidInput, "invalid field: "+f.Field(), http.StatusBadRequest)
}
