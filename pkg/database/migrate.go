package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"movies-db/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/tern/v2/migrate"
	"go.uber.org/zap"
)

// VersionTable records which migrations have been applied.
const VersionTable = "public.schema_version"

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator loads the embedded migrations rendered for policy. conn may be
// nil when the migrations are only inspected.
func newMigrator(ctx context.Context, conn *pgx.Conn, policy utils.PolicyConfig) (*migrate.Migrator, error) {
	migrator, err := migrate.NewMigrator(ctx, conn, VersionTable)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}
	migrator.Data["unique_title"] = policy.UniqueTitle

	files, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return nil, err
	}
	if err := migrator.LoadMigrations(files); err != nil {
		return nil, fmt.Errorf("load migrations: %w", err)
	}
	return migrator, nil
}

// Migrate brings the schema at connStr up to the latest version. The title
// policy is rendered into the first migration, so changing it later has no
// effect on an existing schema.
func Migrate(ctx context.Context, connStr string, policy utils.PolicyConfig, logger *zap.Logger) error {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return fmt.Errorf("connect for migration: %w", err)
	}
	defer conn.Close(ctx)

	migrator, err := newMigrator(ctx, conn, policy)
	if err != nil {
		return err
	}
	migrator.OnStart = func(sequence int32, name, direction, _ string) {
		logger.Info("Applying migration",
			zap.Int32("sequence", sequence),
			zap.String("name", name),
			zap.String("direction", direction),
		)
	}

	if err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
