// AngelaMos | 2026
// migrate.go

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aurex-pk/aurex-api/internal/migrations"
)

func newMigrateCmd() *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the embedded schema migrations",
		Example: `  aurexctl migrate up
  aurexctl migrate down --steps 1
  aurexctl migrate version`,
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", envOr("DATABASE_URL", ""),
		"Postgres connection URL (default $DATABASE_URL)")

	withRunner := func(fn func(cmd *cobra.Command, r *migrations.Runner) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			if databaseURL == "" {
				return errors.New("database url is required")
			}
			r, err := migrations.New(databaseURL)
			if err != nil {
				return err
			}
			defer r.Close() //nolint:errcheck
			return fn(cmd, r)
		}
	}

	var downSteps int

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withRunner(func(cmd *cobra.Command, r *migrations.Runner) error {
			if err := r.Up(); err != nil {
				return err
			}
			return printVersion(cmd, r)
		}),
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations, all of them unless --steps is set",
		Args:  cobra.NoArgs,
		RunE: withRunner(func(cmd *cobra.Command, r *migrations.Runner) error {
			var err error
			if downSteps > 0 {
				err = r.Steps(-downSteps)
			} else {
				err = r.Down()
			}
			if err != nil {
				return err
			}
			return printVersion(cmd, r)
		}),
	}
	down.Flags().IntVar(&downSteps, "steps", 0, "number of migrations to roll back")

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE:  withRunner(printVersion),
	}

	cmd.AddCommand(up, down, ver)
	return cmd
}

func printVersion(cmd *cobra.Command, r *migrations.Runner) error {
	v, dirty, err := r.Version()
	if err != nil {
		return err
	}

	suffix := ""
	if dirty {
		suffix = " (dirty)"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d%s\n", v, suffix)
	return err
}
