package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lofinight/internal/authz"
	"lofinight/internal/utils"
)

func testTokenManager() *utils.TokenManager {
	return &utils.TokenManager{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
	}
}

func newAuthedRequest(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuth(t *testing.T) {
	manager := testTokenManager()
	userID := uuid.New()
	token, err := manager.GenerateAccessToken(userID.String(), "night@owl.dev", "premium")
	require.NoError(t, err)

	mw := AuthMiddleware{Tokens: manager}
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("valid token populates identity", func(t *testing.T) {
		c, _ := newAuthedRequest(t, "Bearer "+token)
		err := mw.RequireAuth(next)(c)
		require.NoError(t, err)

		gotID, ok := UserIDFromContext(c)
		require.True(t, ok)
		assert.Equal(t, userID, gotID)
		email, ok := EmailFromContext(c)
		require.True(t, ok)
		assert.Equal(t, "night@owl.dev", email)
		role, ok := RoleFromContext(c)
		require.True(t, ok)
		assert.Equal(t, authz.RolePremium, role)
	})

	rejected := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token " + token},
		{"lowercase scheme", "bearer " + token},
		{"extra parts", "Bearer " + token + " extra"},
		{"bare token", token},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthedRequest(t, tc.authorization)
			err := mw.RequireAuth(next)(c)
			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		})
	}

	t.Run("refresh token is not an access token", func(t *testing.T) {
		refresh, err := manager.GenerateRefreshToken(userID.String(), "night@owl.dev", "premium")
		require.NoError(t, err)
		c, _ := newAuthedRequest(t, "Bearer "+refresh)
		authErr := mw.RequireAuth(next)(c)
		var httpErr *echo.HTTPError
		require.ErrorAs(t, authErr, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	})
}
