package authservice

import (
	"errors"
	"testing"

	"github.com/centraldiv/botcore/pkg/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const secretHash = "$2a$10$hashofprovisionedsecret"

func NewMock(t *testing.T) (*Service, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(secretHash, hashService, jwtService)
	defer ctrl.Finish()
	return service, hashService, jwtService
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name        string
		gateway     string
		secret      string
		prepareMock func(hashService *auth.MockHashServiceInterface)
		wantErr     error
	}{
		{
			name:    "ValidSecret",
			gateway: "discord-gw-1",
			secret:  "provisioned-secret",
			prepareMock: func(hashService *auth.MockHashServiceInterface) {
				hashService.EXPECT().ComparePassword(secretHash, "provisioned-secret").Return(true)
			},
		},
		{
			name:    "WrongSecret",
			gateway: "discord-gw-1",
			secret:  "guess",
			prepareMock: func(hashService *auth.MockHashServiceInterface) {
				hashService.EXPECT().ComparePassword(secretHash, "guess").Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:        "EmptyGateway",
			gateway:     "",
			secret:      "provisioned-secret",
			prepareMock: func(hashService *auth.MockHashServiceInterface) {},
			wantErr:     ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, hashService, _ := NewMock(t)
			tt.prepareMock(hashService)

			err := service.Authenticate(tt.gateway, tt.secret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Run("TokenIssued", func(t *testing.T) {
		service, _, jwtService := NewMock(t)

		jwtService.EXPECT().GenerateJWT("discord-gw-1", gomock.Any()).Return("token123", nil)

		token, err := service.GenerateToken("discord-gw-1")
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("SigningError", func(t *testing.T) {
		service, _, jwtService := NewMock(t)

		jwtService.EXPECT().GenerateJWT("discord-gw-1", gomock.Any()).Return("", errors.New("signing error"))

		token, err := service.GenerateToken("discord-gw-1")
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}
