package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"society/internal/db"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect schema migrations",
	}

	cmd.AddCommand(
		migrateStep("up", "Apply all pending migrations", (*db.Migrator).Up),
		migrateStep("down", "Roll back the latest migration", (*db.Migrator).Down),
		migrateStep("status", "Show the state of every migration", (*db.Migrator).Status),
	)
	return cmd
}

func migrateStep(use, short string, run func(*db.Migrator, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Open(databaseURL)
			if err != nil {
				return err
			}
			defer conn.Close()

			m, err := db.NewMigrator(conn, logger)
			if err != nil {
				return err
			}
			if err := run(m, cmd.Context()); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}

			version, err := m.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		},
	}
}
