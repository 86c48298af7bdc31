package service

import (
	"context"
	"errors"
	"time"

	"texportal_backend/internal/auth/password"
	"texportal_backend/internal/auth/repository"
	"texportal_backend/internal/auth/token"
	"texportal_backend/internal/auth/transport"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("token invalid")

const (
	accessTokenType = "access"
	refreshTokenTTL = 30 * 24 * time.Hour

	// Session modes. Guests get full read access to the demo dataset;
	// the mode claim lets handlers distinguish them when it matters.
	ModeUser  = "user"
	ModeGuest = "guest"
)

type Service struct {
	repo *repository.Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
}

func New(repo *repository.Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{repo: repo, cfg: cfg, log: log}
}

func (s *Service) SignIn(ctx context.Context, email, plainPassword string) (*transport.TokenResponse, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		s.log.AuthEvent("sign_in", email, false, "unknown user")
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		s.log.AuthEvent("sign_in", email, false, "wrong password")
		return nil, ErrInvalidCredentials
	}

	access, err := s.signJWT(user.ID, ModeUser)
	if err != nil {
		return nil, err
	}

	refresh, err := token.GenerateRandomToken(48)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateRefreshToken(ctx, user.ID, token.HashSHA256(refresh), refreshTokenTTL); err != nil {
		return nil, err
	}

	s.log.AuthEvent("sign_in", user.Email, true, "")
	return &transport.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Mode:         ModeUser,
		UserID:       user.ID.String(),
		Name:         user.Name,
	}, nil
}

// Guest issues a short-lived session with a fresh anonymous identity.
// Guests never get a refresh token.
func (s *Service) Guest(ctx context.Context) (*transport.TokenResponse, error) {
	guestID := uuid.New()

	access, err := s.signJWT(guestID, ModeGuest)
	if err != nil {
		return nil, err
	}

	s.log.AuthEvent("guest_session", guestID.String(), true, "")
	return &transport.TokenResponse{
		AccessToken: access,
		Mode:        ModeGuest,
		UserID:      guestID.String(),
	}, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a
// new pair is issued.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*transport.TokenResponse, error) {
	hash := token.HashSHA256(refreshToken)
	userID, err := s.repo.GetRefreshToken(ctx, hash)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	_ = s.repo.RevokeRefreshToken(ctx, hash)

	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	access, err := s.signJWT(user.ID, ModeUser)
	if err != nil {
		return nil, err
	}

	next, err := token.GenerateRandomToken(48)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateRefreshToken(ctx, user.ID, token.HashSHA256(next), refreshTokenTTL); err != nil {
		return nil, err
	}

	return &transport.TokenResponse{
		AccessToken:  access,
		RefreshToken: next,
		Mode:         ModeUser,
		UserID:       user.ID.String(),
		Name:         user.Name,
	}, nil
}

func (s *Service) SignOut(ctx context.Context, refreshToken string) error {
	return s.repo.RevokeRefreshToken(ctx, token.HashSHA256(refreshToken))
}

func (s *Service) signJWT(userID uuid.UUID, mode string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"type": accessTokenType,
		"mode": mode,
		"exp":  now.Add(s.cfg.GetAccessTokenTTL()).Unix(),
		"iat":  now.Unix(),
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenObj.SignedString([]byte(s.cfg.GetJWTAccessSecret()))
}
