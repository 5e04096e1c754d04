package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/leo-lightfoot/travel-photo-album/internal/config"
)

var (
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidToken      = errors.New("invalid or expired token")
)

type SessionClaims struct {
	SessionID uuid.UUID `json:"session_id"`
	jwt.RegisteredClaims
}

type SessionToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AuthService is the album's access gate. It compares a candidate string
// against the single configured shared secret; there is no account
// concept and no lockout. A successful check issues a signed session
// token that the rest of the API requires.
type AuthService interface {
	Login(ctx context.Context, password string) (*SessionToken, error)
	ValidateToken(ctx context.Context, token string) (*SessionClaims, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewAuthService(redis *redis.Client, cfg *config.Config) AuthService {
	return &authService{redis: redis, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, password string) (*SessionToken, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AlbumPassword)) != 1 {
		return nil, ErrIncorrectPassword
	}

	now := time.Now()
	claims := &SessionClaims{
		SessionID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &SessionToken{
		AccessToken: signed,
		ExpiresIn:   int64(s.cfg.SessionExpiry.Seconds()),
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.redis != nil {
		revoked, err := s.redis.Exists(ctx, revocationKey(claims.SessionID)).Result()
		if err == nil && revoked > 0 {
			return nil, ErrInvalidToken
		}
	}

	return claims, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.ValidateToken(ctx, tokenString)
	if err != nil {
		return err
	}

	if s.redis == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, revocationKey(claims.SessionID), "1", ttl).Err()
}

func revocationKey(sessionID uuid.UUID) string {
	return "album:revoked:" + sessionID.String()
}
