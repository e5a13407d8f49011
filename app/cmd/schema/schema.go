package schema

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/user-notes/persistence/v1/schema"
	"github.com/ribgsilva/user-notes/platform/env"
	"github.com/ribgsilva/user-notes/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command groups the schema sub commands
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes database schema",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initVars(log)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if sys.R.Database == nil {
				return
			}
			if err := sys.R.Database.Close(); err != nil {
				log.Errorf("could not close db conn gracefully: %s", err)
			}
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("creating schema")
			if err := schema.Create(cmd.Context()); err != nil {
				return fmt.Errorf("failed to create schema: %w", err)
			}
			cmd.Println("created schema")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Deletes the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("deleting schema")
			if err := schema.Drop(cmd.Context()); err != nil {
				return fmt.Errorf("failed to delete schema: %w", err)
			}
			cmd.Println("deleted schema")
			return nil
		},
	})

	return cmd
}

func initVars(log *zap.SugaredLogger) error {
	env.Load(log, ".env")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log

	// mysql
	var db *sql.DB
	if err := func() error {
		mysqlDb, err := sql.Open("mysql", sys.Configs.Database.ConnectionURL)
		if err != nil {
			return fmt.Errorf("error to connecto to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
		defer dbCancel()
		if err := mysqlDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = mysqlDb
		return nil
	}(); err != nil {
		return err
	}
	sys.R.Database = db
	return nil
}
