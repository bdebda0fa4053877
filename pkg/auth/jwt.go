package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

type JWTServiceInterface interface {
	GenerateJWT(gateway string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

var secretKey = []byte("botcore-signing-key")

type Claims struct {
	Gateway string `json:"gateway"`
	jwt.StandardClaims
}

type JWTService struct{}

func (s *JWTService) GenerateJWT(gateway string, expirationTime time.Time) (string, error) {
	claims := Claims{
		Gateway: gateway,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    "botcore",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Gateway == "" || claims.Issuer != "botcore" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
