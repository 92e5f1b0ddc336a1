package auth

import (
	"errors"
	"time"

	"adboard_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Token failure kinds. Callers at the HTTP boundary collapse all of them
// into a single 401 so clients cannot tell which check failed.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
)

// Claims carried by every access token: subject user id and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string          `json:"uid"`
	Role   models.UserRole `json:"role"`
}

// TokenService issues and verifies HS256 access tokens. The signing key is
// fixed at construction and never mutated, so the service is safe for
// concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given user that expires ttl from now.
func (s *TokenService) Issue(userID string, role models.UserRole) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
		Role:   role,
	})

	return token.SignedString(s.secret)
}

// Parse verifies signature and expiry and returns the claims. Failures map
// to the sentinel errors above.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalidSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
