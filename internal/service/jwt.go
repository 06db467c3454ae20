package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VistorGiese/accounts-service/internal/apperrors"
)

// Claims represents JWT token claims.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTService defines JWT token operations.
type JWTService interface {
	Generate(userID int64, username string) (string, error)
	Validate(tokenString string) (*Claims, error)
	TTL() time.Duration
}

type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService creates a new JWTService instance. It returns nil for an
// empty secret; callers must treat that as a fatal startup condition.
func NewJWTService(secret string, ttl time.Duration) JWTService {
	if secret == "" {
		return nil
	}
	return &jwtService{secret: secret, ttl: ttl}
}

// Generate mints a signed token carrying the user identity with an
// absolute expiry ttl after issuance.
func (s *jwtService) Generate(userID int64, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Validate checks the signature before any claim is used and classifies
// failures: apperrors.ErrTokenExpired for elapsed expiry, apperrors.ErrTokenInvalid
// for everything else (bad signature, malformed payload, wrong algorithm).
func (s *jwtService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrTokenInvalid
}

func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
