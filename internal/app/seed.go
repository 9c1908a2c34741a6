package app

import (
	"context"
	"fmt"
	"time"

	"github.com/u4rad/camp-service/config"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/logger"
	"github.com/u4rad/camp-service/internal/repository"
	"github.com/u4rad/camp-service/internal/service"
	"go.mongodb.org/mongo-driver/bson"
)

const seedTimeout = 10 * time.Second

// HardCopyPriceName names the copy price row mirroring the hard copy rate.
const HardCopyPriceName = "Hard Copy"

// UserSeeder creates an account unless the username is taken.
type UserSeeder interface {
	EnsureUser(ctx context.Context, username, password, companyName string) (bool, error)
}

// SeedDefaults creates the first back-office account and the hard copy
// price row. Both are skipped when already present.
func SeedDefaults(ctx context.Context, auth config.AuthConfig, users UserSeeder, copyPrices service.ResourceService[model.CopyPrice]) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()
	l := logger.WithComponent("seed")

	if auth.AdminPassword != "" {
		created, err := users.EnsureUser(ctx, auth.AdminUsername, auth.AdminPassword, "U4RAD")
		if err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		if created {
			l.Info().Str("username", auth.AdminUsername).Msg("Created admin user")
		}
	} else if auth.Enabled {
		l.Warn().Msg("Authentication is enabled but ADMIN_PASSWORD is empty, no admin user seeded")
	}

	existing, err := copyPrices.List(ctx, repository.Query{Filter: bson.M{"name": HardCopyPriceName}, Limit: 1})
	if err != nil {
		return fmt.Errorf("look up hard copy price: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	if err := copyPrices.Create(ctx, &model.CopyPrice{Name: HardCopyPriceName, HardCopyPrice: model.HardCopyRatePerCase}); err != nil {
		return fmt.Errorf("seed hard copy price: %w", err)
	}
	l.Info().Str("price", model.HardCopyRatePerCase.String()).Msg("Created hard copy price")
	return nil
}
