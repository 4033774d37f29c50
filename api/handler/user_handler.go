package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"lofinight/api/middleware"
	"lofinight/internal/authz"
	"lofinight/internal/dto"
	"lofinight/internal/repository"
	"lofinight/internal/service"
)

type UserHandler struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewUserHandler(svc *service.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{Service: svc, Validate: validate}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "unauthorized")
	}
	user, err := h.Service.GetByID(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "unauthorized")
	}
	var req dto.UpdateProfileRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	input := service.UpdateProfileInput{
		FullName:    req.FullName,
		Avatar:      req.Avatar,
		Bio:         req.Bio,
		Phone:       req.Phone,
		Location:    req.Location,
		Preferences: req.Preferences,
	}
	user, err := h.Service.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

// List is the admin user listing with search, filters and pagination.
func (h *UserHandler) List(c echo.Context) error {
	query := repository.ListUsersQuery{
		Search:    c.QueryParam("search"),
		Role:      authz.Role(c.QueryParam("role")),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
	if raw := c.QueryParam("isActive"); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			return writeValidationError(c, "invalid isActive filter")
		}
		query.IsActive = &isActive
	}
	query.Page, _ = strconv.Atoi(c.QueryParam("page"))
	query.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 100 {
		query.Limit = 20
	}

	users, total, err := h.Service.List(c.Request().Context(), query)
	if err != nil {
		return writeServiceError(c, err)
	}

	pages := total / int64(query.Limit)
	if total%int64(query.Limit) != 0 {
		pages++
	}
	return c.JSON(http.StatusOK, dto.UserListResponse{
		Users: dto.UserResponsesFromEntities(users),
		Pagination: dto.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
			Total: total,
			Pages: pages,
		},
	})
}

func (h *UserHandler) UpdateStatus(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid user id")
	}
	var req dto.UpdateUserStatusRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.Service.UpdateStatus(c.Request().Context(), userID, *req.IsActive); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "user status updated"})
}

func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := parseUUIDParam(c, "id")
	if err != nil {
		return writeValidationError(c, "invalid user id")
	}
	if err := h.Service.Delete(c.Request().Context(), userID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}
