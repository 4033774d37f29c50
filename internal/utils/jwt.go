package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	TokenIssuer   = "lofi-night-api"
	TokenAudience = "lofi-night-users"
)

// TokenManager signs and verifies the access/refresh token pair. The two
// token kinds use separate secrets and are never interchangeable.
type TokenManager struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (m TokenManager) accessTTL() time.Duration {
	if m.AccessTTL > 0 {
		return m.AccessTTL
	}
	return 7 * 24 * time.Hour
}

func (m TokenManager) refreshTTL() time.Duration {
	if m.RefreshTTL > 0 {
		return m.RefreshTTL
	}
	return 30 * 24 * time.Hour
}

func (m TokenManager) sign(secret []byte, ttl time.Duration, userID, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Audience:  jwt.ClaimStrings{TokenAudience},
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (m TokenManager) parse(secret []byte, tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithIssuer(TokenIssuer), jwt.WithAudience(TokenAudience))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m TokenManager) GenerateAccessToken(userID, email, role string) (string, error) {
	return m.sign(m.AccessSecret, m.accessTTL(), userID, email, role)
}

func (m TokenManager) GenerateRefreshToken(userID, email, role string) (string, error) {
	return m.sign(m.RefreshSecret, m.refreshTTL(), userID, email, role)
}

// GenerateTokenPair mints a fresh access and refresh token for the identity.
func (m TokenManager) GenerateTokenPair(userID, email, role string) (TokenPair, error) {
	accessToken, err := m.GenerateAccessToken(userID, email, role)
	if err != nil {
		return TokenPair{}, err
	}
	refreshToken, err := m.GenerateRefreshToken(userID, email, role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(m.accessTTL().Seconds()),
	}, nil
}

func (m TokenManager) ParseAccessToken(tokenString string) (*Claims, error) {
	return m.parse(m.AccessSecret, tokenString)
}

func (m TokenManager) ParseRefreshToken(tokenString string) (*Claims, error) {
	return m.parse(m.RefreshSecret, tokenString)
}
