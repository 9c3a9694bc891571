package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

// TokenService issues and verifies the bearer tokens that guard the API.
type TokenService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

func NewTokenService(secret string, expiry time.Duration, issuer string) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry, issuer: issuer}
}

func (s *TokenService) Issue(subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, fmt.Errorf("%w: subject is required", ErrInvalidToken)
	}
	now := time.Now()
	expires := now.Add(s.expiry)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify returns the token's subject.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
