package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"lofinight/api/middleware"
	"lofinight/internal/dto"
	"lofinight/internal/service"
)

type AuthHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{Service: svc, Validate: validate}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	input := service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	}
	result, err := h.Service.Register(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.AuthResponse{
		User:   dto.UserResponseFromEntity(result.User),
		Tokens: tokenResponse(result.Tokens),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	result, err := h.Service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AuthResponse{
		User:   dto.UserResponseFromEntity(result.User),
		Tokens: tokenResponse(result.Tokens),
	})
}

// Refresh accepts the refresh token from the request body, falling back to
// the X-Refresh-Token header when the body carries none.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req dto.RefreshTokenRequest
	// an absent or empty body is fine, the header may still carry the token
	_ = decodeJSON(c, &req)
	refreshToken := req.RefreshToken
	if refreshToken == "" {
		refreshToken = c.Request().Header.Get("X-Refresh-Token")
	}
	if refreshToken == "" {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "missing refresh token")
	}
	tokens, err := h.Service.RefreshToken(c.Request().Context(), refreshToken)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, tokenResponse(*tokens))
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.Service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "if the email exists, a reset link has been sent",
	})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.Service.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "password has been reset"})
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "unauthorized")
	}
	var req dto.ChangePasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.Service.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "password updated"})
}

func (h *AuthHandler) SendEmailOTP(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "unauthorized")
	}
	if err := h.Service.SendEmailOTP(c.Request().Context(), userID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "verification code sent"})
}

func (h *AuthHandler) VerifyEmailOTP(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "UnauthorizedError", "unauthorized")
	}
	var req dto.VerifyOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.validate(req); err != nil {
		return writeValidationError(c, err.Error())
	}
	if err := h.Service.VerifyEmailOTP(c.Request().Context(), userID, req.OTP); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "email verified"})
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func tokenResponse(tokens service.TokenPair) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}
}
