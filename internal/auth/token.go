package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gameopolis-api/internal/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Claims carried by the admin session token.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and verifies the signed admin credential. There is one
// fixed credential pair; expiry is the only lifecycle bound, and rotating
// the secret invalidates every outstanding token at once.
type Service struct {
	conf config.AuthConfig
}

func NewService(conf config.AuthConfig) *Service {
	return &Service{conf: conf}
}

// Login checks the configured credential pair and returns a signed token.
// The error never reveals which of the two fields was wrong.
func (s *Service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.conf.AdminUsername)) == 1

	var passOK bool
	if s.conf.AdminPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.conf.AdminPasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.conf.AdminPassword)) == 1
	}

	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.conf.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.conf.JWTSecret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.conf.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
