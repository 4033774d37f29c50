package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lofinight/internal/dto"
	"lofinight/internal/service"
)

// identityIssuer maps opaque refresh tokens to identities and mints tokens
// that name the identity, so tests can tell which token was verified.
type identityIssuer struct {
	identities map[string]string
}

func (i identityIssuer) GenerateTokenPair(userID, email, role string) (service.TokenPair, error) {
	return service.TokenPair{
		AccessToken:  "access-for-" + email,
		RefreshToken: "refresh-for-" + email,
		ExpiresIn:    3600,
	}, nil
}

func (i identityIssuer) ParseRefreshToken(token string) (*service.TokenClaims, error) {
	email, ok := i.identities[token]
	if !ok {
		return nil, errors.New("unknown refresh token")
	}
	return &service.TokenClaims{UserID: uuid.NewString(), Email: email, Role: "user"}, nil
}

func newRefreshHandler() *AuthHandler {
	issuer := identityIssuer{identities: map[string]string{
		"body-refresh":   "body@owl.dev",
		"header-refresh": "header@owl.dev",
	}}
	svc := service.NewAuthService(nil, nil, nil, issuer, nil, nil, service.AuthConfig{})
	return NewAuthHandler(svc, validator.New())
}

func doRefresh(t *testing.T, body, header string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	if header != "" {
		req.Header.Set("X-Refresh-Token", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, newRefreshHandler().Refresh(c))
	return rec
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("body field wins when both are present", func(t *testing.T) {
		rec := doRefresh(t, `{"refreshToken":"body-refresh"}`, "header-refresh")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access-for-body@owl.dev", resp.AccessToken)
	})

	t.Run("header is the fallback for an empty body", func(t *testing.T) {
		rec := doRefresh(t, "", "header-refresh")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access-for-header@owl.dev", resp.AccessToken)
	})

	t.Run("header is the fallback for an empty body field", func(t *testing.T) {
		rec := doRefresh(t, `{"refreshToken":""}`, "header-refresh")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access-for-header@owl.dev", resp.AccessToken)
	})

	t.Run("missing everywhere is unauthorized", func(t *testing.T) {
		rec := doRefresh(t, "", "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "UnauthorizedError", resp.Error)
	})

	t.Run("unknown token is unauthorized", func(t *testing.T) {
		rec := doRefresh(t, `{"refreshToken":"forged"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
