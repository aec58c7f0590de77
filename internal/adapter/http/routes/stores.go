package routes

import (
	"context"
	"fmt"
	"log/slog"

	"propostas_api/internal/adapter/persistence/repository"
	"propostas_api/internal/adapter/persistence/sqlite"
	"propostas_api/internal/config"
	"propostas_api/internal/infrastructure/database"
	"propostas_api/internal/usecase/interfaces"
)

// stores groups the record store repositories of one backend.
type stores struct {
	clients   interfaces.IClientRepository
	catalog   interfaces.ICatalogRepository
	proposals interfaces.IProposalRepository
	items     interfaces.IProposalItemRepository
	roles     interfaces.IRoleRepository
	close     func() error
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		if err := sqlite.Migrate(ctx, db); err != nil {
			db.Close()
			return stores{}, fmt.Errorf("failed to migrate sqlite store: %w", err)
		}
		slog.Info("[routes] using sqlite store", "path", cfg.SQLitePath)
		return stores{
			clients:   sqlite.NewClientRepository(db),
			catalog:   sqlite.NewCatalogRepository(db),
			proposals: sqlite.NewProposalRepository(db),
			items:     sqlite.NewProposalItemRepository(db),
			roles:     sqlite.NewRoleRepository(db),
			close:     db.Close,
		}, nil

	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return stores{}, err
		}
		t := cfg.DynamoDB.Tables
		slog.Info("[routes] using dynamodb store", "region", cfg.DynamoDB.Region, "endpoint", cfg.DynamoDB.Endpoint)
		return stores{
			clients:   repository.NewClientDynamoRepository(ddb, t.Clients),
			catalog:   repository.NewCatalogDynamoRepository(ddb, t.Services, t.Plans),
			proposals: repository.NewProposalDynamoRepository(ddb, t.Proposals),
			items:     repository.NewProposalItemDynamoRepository(ddb, t.ProposalItems),
			roles:     repository.NewRoleDynamoRepository(ddb, t.UserRoles),
			close:     func() error { return nil },
		}, nil

	default:
		return stores{}, fmt.Errorf("%w: %q", config.ErrInvalidStoreDriver, cfg.StoreDriver)
	}
}
