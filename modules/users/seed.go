package users

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/modules/auth"
	"github.com/hirehub/jobboard/pkg/logger"
)

// SeedConfig controls the default-account bootstrap. Seeding is opt-in;
// production deployments leave it disabled and provision accounts
// explicitly.
type SeedConfig struct {
	Enabled      bool   `env:"SEED_DEFAULT_USERS" envDefault:"false"`
	InitPassword string `env:"INIT_USER_PASSWORD" envDefault:"123456"`
}

type seedAccount struct {
	name  string
	email string
	role  string
}

var defaultAccounts = []seedAccount{
	{name: "Eric", email: "admin@gmail.com", role: auth.RoleAdmin},
	{name: "User", email: "user@gmail.com", role: auth.RoleUser},
	{name: "User 1", email: "user1@gmail.com", role: auth.RoleUser},
	{name: "User 2", email: "user2@gmail.com", role: auth.RoleUser},
	{name: "User 3", email: "user3@gmail.com", role: auth.RoleUser},
}

// Seed upserts the default accounts by email. Idempotent: existing
// accounts are never modified, so re-running on every boot is safe.
func Seed(ctx context.Context, repo *Repository, cfg SeedConfig, log *slog.Logger) error {
	if log == nil {
		log = logger.Noop()
	}
	if !cfg.Enabled {
		log.DebugContext(ctx, "user seeding disabled")
		return nil
	}

	hash, err := auth.HashPassword(cfg.InitPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now()
	for _, acc := range defaultAccounts {
		err := repo.UpsertByEmail(ctx, User{
			Name:     acc.name,
			Email:    acc.email,
			Password: hash,
			Role:     acc.role,
			Fields:   audit.Fields{CreatedAt: now, UpdatedAt: now},
		})
		if err != nil {
			return fmt.Errorf("seed default users: %w", err)
		}
	}

	log.InfoContext(ctx, "default users seeded", slog.Int("count", len(defaultAccounts)))
	return nil
}
