package unit_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leo-lightfoot/travel-photo-album/internal/config"
	"github.com/leo-lightfoot/travel-photo-album/internal/service"
)

func gateConfig() *config.Config {
	return &config.Config{
		AlbumPassword: "travelpass123",
		JWTSecret:     "test-secret",
		SessionExpiry: time.Hour,
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := service.NewAuthService(nil, gateConfig())
	ctx := context.Background()

	t.Run("Correct password", func(t *testing.T) {
		token, err := svc.Login(ctx, "travelpass123")

		require.NoError(t, err)
		require.NotNil(t, token)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, int64(3600), token.ExpiresIn)

		claims, err := svc.ValidateToken(ctx, token.AccessToken)
		require.NoError(t, err)
		assert.NotEqual(t, claims.SessionID.String(), "00000000-0000-0000-0000-000000000000")
	})

	t.Run("Wrong password", func(t *testing.T) {
		token, err := svc.Login(ctx, "letmein")

		assert.ErrorIs(t, err, service.ErrIncorrectPassword)
		assert.Nil(t, token)
	})

	t.Run("Empty password", func(t *testing.T) {
		token, err := svc.Login(ctx, "")

		assert.ErrorIs(t, err, service.ErrIncorrectPassword)
		assert.Nil(t, token)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc := service.NewAuthService(nil, gateConfig())
	ctx := context.Background()

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Token signed with a different secret", func(t *testing.T) {
		other := service.NewAuthService(nil, &config.Config{
			AlbumPassword: "travelpass123",
			JWTSecret:     "another-secret",
			SessionExpiry: time.Hour,
		})
		token, err := other.Login(ctx, "travelpass123")
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := service.NewAuthService(nil, &config.Config{
			AlbumPassword: "travelpass123",
			JWTSecret:     "test-secret",
			SessionExpiry: -time.Minute,
		})
		token, err := expired.Login(ctx, "travelpass123")
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := service.NewAuthService(client, gateConfig())
	ctx := context.Background()

	t.Run("Revoked token stops validating", func(t *testing.T) {
		token, err := svc.Login(ctx, "travelpass123")
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token.AccessToken)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, token.AccessToken))

		_, err = svc.ValidateToken(ctx, token.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Revocation is per session", func(t *testing.T) {
		first, err := svc.Login(ctx, "travelpass123")
		require.NoError(t, err)
		second, err := svc.Login(ctx, "travelpass123")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, first.AccessToken))

		_, err = svc.ValidateToken(ctx, first.AccessToken)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		_, err = svc.ValidateToken(ctx, second.AccessToken)
		assert.NoError(t, err)
	})

	t.Run("Logout with invalid token", func(t *testing.T) {
		err := svc.Logout(ctx, "not-a-token")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Revocation expires with the token", func(t *testing.T) {
		token, err := svc.Login(ctx, "travelpass123")
		require.NoError(t, err)
		require.NoError(t, svc.Logout(ctx, token.AccessToken))

		mr.FastForward(2 * time.Hour)
		assert.Empty(t, mr.Keys())
	})
}
