package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/mongodb"
	"github.com/L20660042/Backend-Proy-sub001/internal/infrastructure/postgres"
	"github.com/L20660042/Backend-Proy-sub001/pkg/config"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "aplica las migraciones SQL embebidas (PostgreSQL) o crea los índices (MongoDB)",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "revierte la última migración (solo PostgreSQL)")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch cfg.DB.Driver {
	case config.DriverMongo:
		if migrateRollback {
			return fmt.Errorf("migrate: --rollback no aplica a MongoDB")
		}
		client, db, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return err
		}
		defer client.Disconnect(ctx)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		fmt.Fprintln(out, "índices de MongoDB asegurados")
		return nil
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool, migrateRollback); err != nil {
			return err
		}
		if migrateRollback {
			fmt.Fprintln(out, "última migración revertida")
		} else {
			fmt.Fprintln(out, "migraciones aplicadas")
		}
		return nil
	}
}
