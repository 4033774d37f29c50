package service

import (
	"lofinight/internal/utils"
)

// JWTTokenIssuer adapts utils.TokenManager to the TokenIssuer interface.
type JWTTokenIssuer struct {
	Manager *utils.TokenManager
}

func (j JWTTokenIssuer) GenerateTokenPair(userID, email, role string) (TokenPair, error) {
	if j.Manager == nil {
		return TokenPair{}, ErrInvalidToken
	}
	pair, err := j.Manager.GenerateTokenPair(userID, email, role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (j JWTTokenIssuer) ParseRefreshToken(token string) (*TokenClaims, error) {
	if j.Manager == nil {
		return nil, ErrInvalidToken
	}
	claims, err := j.Manager.ParseRefreshToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
