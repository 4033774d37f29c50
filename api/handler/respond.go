package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lofinight/internal/service"
)

// ErrorResponse is the uniform error payload shape.
type ErrorResponse struct {
	Message    string `json:"message"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

func decodeJSON(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

func writeError(c echo.Context, status int, kind, message string) error {
	return c.JSON(status, ErrorResponse{
		Message:    message,
		Error:      kind,
		StatusCode: status,
	})
}

func writeValidationError(c echo.Context, message string) error {
	return writeError(c, http.StatusBadRequest, "ValidationError", message)
}

// writeServiceError maps service sentinels to HTTP responses. Unknown
// errors become a generic 500 so internals never leak to clients.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return writeError(c, http.StatusBadRequest, "ValidationError", err.Error())
	case errors.Is(err, service.ErrEmailAlreadyVerified),
		errors.Is(err, service.ErrEmailSendFailed):
		return writeError(c, http.StatusBadRequest, "BadRequestError", err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountLocked),
		errors.Is(err, service.ErrAccountDisabled),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidOTP):
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrNotFound):
		return writeError(c, http.StatusNotFound, "NotFoundError", err.Error())
	case errors.Is(err, service.ErrEmailAlreadyUsed),
		errors.Is(err, service.ErrUsernameAlreadyUsed),
		errors.Is(err, service.ErrAlreadyExists):
		return writeError(c, http.StatusConflict, "ConflictError", err.Error())
	default:
		c.Logger().Error(err)
		return writeError(c, http.StatusInternalServerError, "InternalServerError", "internal server error")
	}
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
