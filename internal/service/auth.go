package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"microblog/internal/config"
	"microblog/internal/model"
	"microblog/internal/repository"
)

// AuthService issues JWT access tokens and rotates opaque refresh tokens.
type AuthService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	userRepo         repository.UserRepository
	config           *config.Config
}

func NewAuthService(refreshTokenRepo repository.RefreshTokenRepository, userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		refreshTokenRepo: refreshTokenRepo,
		userRepo:         userRepo,
		config:           cfg,
	}
}

// GenerateTokenPair issues a new access token and persists a refresh token.
// The username claim rides along in the access token so handlers can read
// the viewer's identity without a user lookup.
func (s *AuthService) GenerateTokenPair(ctx context.Context, userID int64, username string) (*model.TokenPair, error) {
	accessToken, err := s.generateAccessToken(userID, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshTokenRaw := uuid.New().String()

	refreshToken := &model.RefreshToken{
		UserID:    userID,
		TokenHash: s.hashToken(refreshTokenRaw),
		ExpiresAt: time.Now().Add(time.Duration(s.config.RefreshTokenMaxAge) * time.Second),
	}

	if err := s.refreshTokenRepo.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenRaw,
		ExpiresIn:    s.config.AccessTokenMaxAge,
	}, nil
}

// expiredTokenRetention is how long expired rows are kept before the
// opportunistic cleanup in RefreshTokens deletes them.
const expiredTokenRetention = 24 * time.Hour

// RefreshTokens validates the refresh token, revokes it and issues a new
// pair bound to the same user. Presenting an already-revoked token means
// a rotated-out token has been replayed, so every active token for that
// user is revoked and their sessions end.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshTokenRaw string) (*model.TokenPair, int64, error) {
	token, err := s.refreshTokenRepo.FindByTokenHash(ctx, s.hashToken(refreshTokenRaw))
	if err != nil {
		return nil, 0, model.ErrRefreshTokenNotFound
	}

	if !token.Usable() {
		if token.RevokedAt != nil {
			log.Printf("[AuthService] Revoked token replayed: user=%d, revoking all tokens", token.UserID)
			if err := s.refreshTokenRepo.RevokeAllForUser(ctx, token.UserID); err != nil {
				return nil, 0, fmt.Errorf("failed to revoke user tokens: %w", err)
			}
			return nil, 0, model.ErrRefreshTokenRevoked
		}
		return nil, 0, model.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load token owner: %w", err)
	}

	newPair, err := s.GenerateTokenPair(ctx, user.ID, user.Username)
	if err != nil {
		return nil, 0, err
	}

	if err := s.refreshTokenRepo.Revoke(ctx, token.ID); err != nil {
		return nil, 0, fmt.Errorf("failed to revoke rotated token: %w", err)
	}

	// Long-expired rows are useless; purge them while we're here.
	if n, err := s.refreshTokenRepo.DeleteExpired(ctx, expiredTokenRetention); err != nil {
		log.Printf("[AuthService] Expired token cleanup failed: %v", err)
	} else if n > 0 {
		log.Printf("[AuthService] Deleted %d expired refresh tokens", n)
	}

	return newPair, token.UserID, nil
}

// RevokeRefreshToken revokes a single refresh token (logout).
func (s *AuthService) RevokeRefreshToken(ctx context.Context, refreshTokenRaw string) error {
	token, err := s.refreshTokenRepo.FindByTokenHash(ctx, s.hashToken(refreshTokenRaw))
	if err != nil {
		return err
	}
	return s.refreshTokenRepo.Revoke(ctx, token.ID)
}

// RevokeAllUserTokens revokes every active refresh token for a user.
func (s *AuthService) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	return s.refreshTokenRepo.RevokeAllForUser(ctx, userID)
}

func (s *AuthService) generateAccessToken(userID int64, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(time.Duration(s.config.AccessTokenMaxAge) * time.Second).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func (s *AuthService) hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
