package main

import (
	"fmt"
	"os"

	"github.com/kolhesatish/content-app/config"
	"github.com/kolhesatish/content-app/db"
	"github.com/kolhesatish/content-app/internal/logger"
	"github.com/kolhesatish/content-app/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "content-app",
		Short:        "Credit-gated Instagram and LinkedIn caption generator",
		SilenceUsage: true,
	}

	serve := newServeCmd()
	rootCmd.RunE = serve.RunE
	rootCmd.AddCommand(serve, newMigrateCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()

			zl, err := logger.New(cfg.Env)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = zl.Sync() }()

			srv, err := server.New(cmd.Context(), cfg, zl)
			if err != nil {
				zl.Error("failed to start", zap.Error(err))
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	var dbURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbURL == "" {
				return fmt.Errorf("database URL is required (--db-url or DB_URL)")
			}

			pool, err := db.NewPostgresPool(cmd.Context(), dbURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(cmd.Context(), pool); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return err
		},
	}
	cmd.Flags().StringVar(&dbURL, "db-url", os.Getenv("DB_URL"), "PostgreSQL connection URL")

	return cmd
}
