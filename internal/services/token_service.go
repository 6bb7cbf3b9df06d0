package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecoshare/ecoshare/internal/models"
)

var (
	ErrInvalidToken = errors.New("invalid token")
)

type TokenClaims struct {
	AccountID uint        `json:"account_id"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the session tokens that carry the
// role claim every authorization decision trusts.
type TokenService struct {
	jwtSecret string
	ttl       time.Duration
}

func NewTokenService(jwtSecret string, ttl time.Duration) *TokenService {
	return &TokenService{
		jwtSecret: jwtSecret,
		ttl:       ttl,
	}
}

func (s *TokenService) Generate(account *models.Account) (string, error) {
	claims := TokenClaims{
		AccountID: account.ID,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "ecoshare",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
