package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"society/internal/adapter/repo"
	"society/internal/auth"
	"society/internal/domain"
	"society/internal/infra"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrator accounts",
	}
	cmd.AddCommand(adminCreateCmd(), adminToggleCmd("grant", true), adminToggleCmd("revoke", false))
	return cmd
}

func adminCreateCmd() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" || password == "" {
				return errors.New("--email and --password are required")
			}
			if len(password) < 8 {
				return errors.New("password must be at least 8 characters")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			return withUsers(cmd.Context(), func(users *repo.UserRepositoryPG) error {
				u := &domain.User{Email: email, FullName: strings.TrimSpace(name), IsAdmin: true, PasswordHash: hash}
				if err := users.Create(cmd.Context(), u); err != nil {
					if errors.Is(err, domain.ErrConflict) {
						return fmt.Errorf("an account for %s already exists; use `admin grant`", email)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", u.Email, u.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	return cmd
}

func adminToggleCmd(use string, isAdmin bool) *cobra.Command {
	var email string

	short := "Grant admin access to an existing account"
	if !isAdmin {
		short = "Revoke admin access from an account"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			if email == "" {
				return errors.New("--email is required")
			}
			return withUsers(cmd.Context(), func(users *repo.UserRepositoryPG) error {
				if err := users.SetAdmin(cmd.Context(), email, isAdmin); err != nil {
					if errors.Is(err, domain.ErrNotFound) {
						return fmt.Errorf("no account for %s", email)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: admin=%t\n", email, isAdmin)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func withUsers(ctx context.Context, fn func(*repo.UserRepositoryPG) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := infra.NewDBPool(ctx, &infra.Config{DatabaseURL: databaseURL, DBMaxConns: 2})
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(repo.NewUserRepository(infra.NewSQLRunner(pool, logger)))
}
