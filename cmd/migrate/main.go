package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"autonomax/config"
	"autonomax/internal/infra/persistence/migrations"
)

const stepsFlag = "steps"

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Autonomax database schema",
		Long: `Apply or roll back the embedded schema migrations against the
database configured in config.yaml or the environment.

Examples:
  migrate up                # apply every pending migration
  migrate down --steps 1    # roll back the latest migration
  migrate version           # print the current schema version`,
		SilenceUsage: true,
	}

	root.AddCommand(newUpCommand(), newDownCommand(), newVersionCommand())

	return root
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(mg *migrations.Migrator) error {
				if err := mg.Up(); err != nil {
					return err
				}

				return printVersion(cmd, mg)
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := cmd.Flags().GetInt(stepsFlag)
			if err != nil {
				return err
			}

			return withMigrator(func(mg *migrations.Migrator) error {
				if err := mg.Down(steps); err != nil {
					return err
				}

				return printVersion(cmd, mg)
			})
		},
	}
	cmd.Flags().Int(stepsFlag, 1, "Number of migrations to roll back (0 rolls back all)")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(mg *migrations.Migrator) error {
				return printVersion(cmd, mg)
			})
		},
	}
}

func withMigrator(fn func(mg *migrations.Migrator) error) (err error) {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Postgres == nil {
		return fmt.Errorf("postgres configuration is missing")
	}

	mg, err := migrations.New(cfg.Postgres.URL())
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := mg.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(mg)
}

func printVersion(cmd *cobra.Command, mg *migrations.Migrator) error {
	version, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	cmd.Printf("schema version %d (dirty: %t)\n", version, dirty)

	return nil
}
