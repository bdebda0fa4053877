package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name           string
		gateway        string
		expirationTime time.Time
		expectError    bool
	}{
		{
			name:           "Valid Token",
			gateway:        "discord-gw-1",
			expirationTime: time.Now().Add(time.Hour),
			expectError:    false,
		},
		{
			name:           "Expired Token",
			gateway:        "discord-gw-1",
			expirationTime: time.Now().Add(-time.Hour),
			expectError:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.gateway, tt.expirationTime)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("discord-gw-1", time.Now().Add(time.Hour))
				return token
			},
			expectError: false,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT("discord-gw-1", time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Missing Gateway Claim",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    "botcore",
				})
				signedToken, _ := token.SignedString(secretKey)
				return signedToken
			},
			expectError: true,
		},
		{
			name: "Wrong Issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					Gateway: "discord-gw-1",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				signedToken, _ := token.SignedString(secretKey)
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
				assert.Equal(t, "discord-gw-1", claims.Gateway)
			}
		})
	}
}
