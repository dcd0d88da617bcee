package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/denmor86/ya-cashout/internal/config"
	"github.com/denmor86/ya-cashout/internal/helpers"
	"github.com/denmor86/ya-cashout/internal/logger"
	"github.com/denmor86/ya-cashout/internal/models"
	"github.com/denmor86/ya-cashout/internal/services"
	"github.com/denmor86/ya-cashout/internal/storage"
	"github.com/spf13/cobra"
)

var errNoDSN = errors.New("database DSN is not set, use --dsn or DATABASE_DSN")

func dsnFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("dsn", "d", os.Getenv("DATABASE_DSN"), "Database DSN")
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database if needed and apply migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, _ := cmd.Flags().GetString("dsn")
			if dsn == "" {
				return errNoDSN
			}
			if err := logger.Initialize("info"); err != nil {
				return err
			}
			db, err := storage.NewDatabase(dsn)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := db.Initialize(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
	dsnFlag(cmd)
	return cmd
}

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a JWT for a user or an operator",
		Long: `Issue a bearer token signed with the service secret.

Examples:
  walletctl token --subject acc-1
  walletctl token --subject operator --role admin --ttl 1h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("subject")
			role, _ := cmd.Flags().GetString("role")
			secret, _ := cmd.Flags().GetString("secret")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			return issueToken(cmd.OutOrStdout(), secret, subject, role, ttl)
		},
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = config.DefaultConfig().Server.JWTSecret
	}
	cmd.Flags().String("subject", "", "Account id (token subject)")
	cmd.Flags().String("role", helpers.RoleUser, "Token role: user or admin")
	cmd.Flags().StringP("secret", "s", secret, "Secret to JWT")
	cmd.Flags().Duration("ttl", services.TokenExpirationTime, "Token lifetime")
	return cmd
}

func issueToken(w io.Writer, secret string, subject string, role string, ttl time.Duration) error {
	cfg := config.DefaultConfig()
	cfg.Server.JWTSecret = secret
	token, err := services.NewIdentity(cfg).GenerateJWTWithTTL(subject, role, ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

func pendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List cash-out requests waiting for manual review",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, _ := cmd.Flags().GetString("dsn")
			if dsn == "" {
				return errNoDSN
			}
			if err := logger.Initialize("warn"); err != nil {
				return err
			}
			db, err := storage.NewDatabase(dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			requests, err := storage.NewCashOutStorage(db).ListCashOutRequests(ctx, models.CashOutStatusPending)
			if err != nil {
				return err
			}
			return printRequests(cmd.OutOrStdout(), requests)
		},
	}
	dsnFlag(cmd)
	return cmd
}

func printRequests(w io.Writer, requests []models.AccountCashOutRequest) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REQUEST\tACCOUNT\tAMOUNT\tREQUESTED\tTRANSFER\tMESSAGE")
	for _, r := range requests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.RequestID, r.AccountID, r.Amount.StringFixed(2), r.RequestedAt.Format(time.RFC3339), r.TransferID, r.FailureMessage)
	}
	return tw.Flush()
}
