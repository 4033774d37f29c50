package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lofinight/internal/authz"
	"lofinight/internal/entity"
)

func secretfulUser() *entity.User {
	now := time.Now()
	hash := "sha256-of-a-secret"
	return &entity.User{
		ID:                       uuid.New(),
		Username:                 "nightowl",
		Email:                    "night@owl.dev",
		Password:                 "$2a$12$notarealhashbutstillsecret",
		FullName:                 "Night Owl",
		Role:                     authz.RoleUser,
		IsActive:                 true,
		LoginAttempts:            3,
		LockUntil:                &now,
		EmailVerificationToken:   &hash,
		EmailVerificationExpires: &now,
		PasswordResetToken:       &hash,
		PasswordResetExpires:     &now,
	}
}

// The register/login response body must never carry the password hash, the
// lockout bookkeeping, or any stored secret hash.
func TestAuthResponseNeverSerializesSecrets(t *testing.T) {
	user := secretfulUser()
	payload, err := json.Marshal(AuthResponse{
		User:   UserResponseFromEntity(user),
		Tokens: TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 3600},
	})
	require.NoError(t, err)

	body := strings.ToLower(string(payload))
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "notarealhash")
	assert.NotContains(t, body, "sha256-of-a-secret")
	assert.NotContains(t, body, "lockuntil")
	assert.NotContains(t, body, "loginattempts")
	assert.Contains(t, body, `"email":"night@owl.dev"`)
}

// Direct entity marshaling (catalog responses embed entities) must hide the
// same fields via struct tags.
func TestUserEntityJSONHidesSecrets(t *testing.T) {
	payload, err := json.Marshal(secretfulUser())
	require.NoError(t, err)

	body := strings.ToLower(string(payload))
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "notarealhash")
	assert.NotContains(t, body, "sha256-of-a-secret")
	assert.NotContains(t, body, "verificationtoken")
}
