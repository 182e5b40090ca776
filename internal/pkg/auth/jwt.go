// Package auth provides password hashing and bearer-token issuance for
// the HTTP layer.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
	"ihm/internal/core/domain/services"
)

// ErrInvalidToken is returned when a token fails signature or claim
// validation for any reason. Callers should treat it as unauthenticated
// without distinguishing the cause.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and validates HMAC-signed JWT access tokens. The
// token carries the user id as subject and the role as a custom claim,
// which is everything the authorization policy needs per request.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. The secret must be non-empty.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue creates a signed access token for the given user.
func (s *TokenService) Issue(userID kernel.UUID, role account.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token string and reconstructs the actor it was
// issued for.
func (s *TokenService) Parse(tokenString string) (services.Actor, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return services.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return services.Actor{}, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return services.Actor{}, ErrInvalidToken
	}
	userID, err := kernel.UUIDFromString(sub)
	if err != nil {
		return services.Actor{}, ErrInvalidToken
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return services.Actor{}, ErrInvalidToken
	}
	role, err := account.ParseRole(roleStr)
	if err != nil {
		return services.Actor{}, ErrInvalidToken
	}

	return services.Actor{UserID: userID, Role: role}, nil
}
