// Package commands implements the societyctl operator CLI.
package commands

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"society/internal/infra"
)

var (
	databaseURL string
	appEnv      string
	logger      zerolog.Logger
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "societyctl",
		Short:         "Operator tooling for the society site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return errors.New("DATABASE_URL is required (flag --database-url or env)")
			}
			if appEnv == "" {
				appEnv = os.Getenv("APP_ENV")
			}
			logger = infra.NewLogger(appEnv)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string (default $DATABASE_URL)")
	root.PersistentFlags().StringVar(&appEnv, "env", "", "environment name used for log formatting (default $APP_ENV)")

	root.AddCommand(migrateCmd(), adminCmd())
	return root
}
