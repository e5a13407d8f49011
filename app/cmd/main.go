package main

import (
	"context"
	"os"

	"github.com/ribgsilva/user-notes/app/cmd/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	// empty logger, the commands print their own progress
	log := zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:          "notes-admin",
		Short:        "Operational commands for the notes service",
		SilenceUsage: true,
	}
	root.AddCommand(schema.Command(log))

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
