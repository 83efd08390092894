package storage

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/simpleshop/internal/config"
	"github.com/polkiloo/simpleshop/internal/domain/repository"
	"github.com/polkiloo/simpleshop/internal/storage/memory"
	"github.com/polkiloo/simpleshop/internal/storage/postgres"
)

// Module wires the customer store selected by configuration.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (repository.Store, error) {
	if p.Config.DatabaseURI != "" {
		store, err := postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
		if err != nil {
			return nil, err
		}
		p.Logger.Info("using postgres customer store")
		return store, nil
	}

	store := memory.New()
	if p.Config.SeedCustomersFile == "" {
		p.Logger.Info("using in-memory customer store")
		return store, nil
	}

	customers, err := memory.LoadSeedFile(p.Config.SeedCustomersFile)
	if err != nil {
		return nil, err
	}
	if err := store.Seed(customers...); err != nil {
		return nil, fmt.Errorf("seed customers: %w", err)
	}
	p.Logger.Info("using in-memory customer store",
		slog.String("seed", p.Config.SeedCustomersFile),
		slog.Int("customers", store.Len()),
	)
	return store, nil
}

func registerLifecycle(lc fx.Lifecycle, store repository.Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})
}
