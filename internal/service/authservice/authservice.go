package authservice

import (
	"errors"
	"time"

	"github.com/centraldiv/botcore/pkg/auth"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service issues access tokens to gateway processes that relay
// chat events into the core. There is no user signup flow: the
// shared secret is provisioned out of band and only its hash is
// kept in the configuration.
type Service struct {
	secretHash  string
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(secretHash string, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		secretHash:  secretHash,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Authenticate(gateway, secret string) error {
	if gateway == "" {
		return ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(s.secretHash, secret); !ok {
		zap.L().Warn("gateway auth rejected", zap.String("gateway", gateway))
		return ErrInvalidCredentials
	}
	zap.L().Info("gateway authenticated", zap.String("gateway", gateway))
	return nil
}

func (s *Service) GenerateToken(gateway string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(gateway, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
