package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ihm/internal/pkg/errs"
)

// errorBody is the JSON error envelope returned by every endpoint.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps application errors onto HTTP status codes. Validation
// failures become 400, missing or out-of-scope objects 404, state and
// uniqueness conflicts 409, permission denials 403. Anything unmapped is
// a 500 with a generic message so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	var (
		requiredErr   *errs.ValueIsRequiredError
		invalidErr    *errs.ValueIsInvalidError
		outOfRangeErr *errs.ValueIsOutOfRangeError
		notFoundErr   *errs.ObjectNotFoundError
		conflictErr   *errs.ConflictError
		authErr       *errs.AuthorizationError
	)

	switch {
	case errors.As(err, &requiredErr), errors.As(err, &invalidErr), errors.As(err, &outOfRangeErr):
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, errorBody{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &conflictErr):
		return ctx.JSON(http.StatusConflict, errorBody{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.As(err, &authErr):
		return ctx.JSON(http.StatusForbidden, errorBody{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorBody{
			Code:    http.StatusInternalServerError,
			Message: "internal server error",
		})
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func writeUnauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, errorBody{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}
