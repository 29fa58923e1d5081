package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maxviazov/talent-agency-service/internal/repository/postgres"
	"github.com/maxviazov/talent-agency-service/migrations"
)

// migrator is the part of postgres.Migrator the commands use.
type migrator interface {
	Up(ctx context.Context) (int, error)
	Status(ctx context.Context) ([]postgres.MigrationState, error)
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, func(m migrator) error {
					return migrateUp(cmd.Context(), m, cmd.OutOrStdout())
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(cmd, func(m migrator) error {
					return migrateStatus(cmd.Context(), m, cmd.OutOrStdout())
				})
			},
		},
	)
	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(migrator) error) error {
	e, err := connect(cmd.Context())
	if err != nil {
		return err
	}
	defer e.repo.Close()
	return fn(postgres.NewMigrator(e.repo.Pool(), migrations.FS, e.log))
}

func migrateUp(ctx context.Context, m migrator, out io.Writer) error {
	n, err := m.Up(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintln(out, "database is up to date")
		return nil
	}
	fmt.Fprintf(out, "applied %d migration(s)\n", n)
	return nil
}

func migrateStatus(ctx context.Context, m migrator, out io.Writer) error {
	states, err := m.Status(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
	for _, s := range states {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.Version, state, s.Path)
	}
	return tw.Flush()
}
