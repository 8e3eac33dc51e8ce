package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail maps an application error onto an HTTP status and returns the JSON
// error body. Validation failures are client errors, authorization failures
// are forbidden, lost races and forbidden transitions are conflicts, and
// anything unclassified is a server error.
func fail(ctx echo.Context, err error) error {
	code := statusCode(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, order.ErrAgentAlreadyAssigned),
		errors.Is(err, order.ErrOrderNotReadyForPickup),
		errors.Is(err, order.ErrOrderNotCancellable),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, product.ErrProductInactive),
		errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrNoItems):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
