package services

import (
	"context"
	"time"

	"github.com/aimasteryhub/backend/internal/logger"
	"github.com/aimasteryhub/backend/internal/models"
	"github.com/aimasteryhub/backend/internal/password"
)

// SeedUsers ensures the bootstrap accounts exist: an admin with the given
// credentials and a regular demo account. Existing accounts are left alone.
func SeedUsers(ctx context.Context, reader UserReader, writer UserCreator, adminUsername, adminPassword string) error {
	seeds := []struct {
		username string
		email    string
		plain    string
		role     string
	}{
		{adminUsername, adminUsername + "@example.com", adminPassword, models.RoleAdmin},
		{"user", "user@example.com", "user123", models.RoleUser},
	}

	for _, seed := range seeds {
		if seed.username == "" || seed.plain == "" {
			continue
		}

		existing, err := reader.GetByUsername(ctx, seed.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hashed, err := password.Hash(seed.plain)
		if err != nil {
			return err
		}
		_, err = writer.Create(ctx, models.User{
			Username:       seed.username,
			Email:          seed.email,
			HashedPassword: hashed,
			Role:           seed.role,
			CreatedAt:      time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		logger.Log.Infow("seeded account", "username", seed.username, "role", seed.role)
	}
	return nil
}
