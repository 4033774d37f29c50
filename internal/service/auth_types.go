package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	OTPLength       int
	OTPTTL          time.Duration
	ResetTokenTTL   time.Duration
	LockoutAttempts int
	LockoutDuration time.Duration
}

type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, email, fullName string) error
	SendOTPEmail(ctx context.Context, email, otp, fullName string) error
	SendPasswordResetEmail(ctx context.Context, email, token, fullName string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

// TokenIssuer mints and verifies the access/refresh token pair.
type TokenIssuer interface {
	GenerateTokenPair(userID, email, role string) (TokenPair, error)
	ParseRefreshToken(token string) (*TokenClaims, error)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = 12
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
