// Package cli implements agencyctl, the operator command line for the service.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/talent-agency-service/internal/config"
	"github.com/maxviazov/talent-agency-service/internal/logger"
	"github.com/maxviazov/talent-agency-service/internal/repository"
)

var flagConfig string

// NewRootCmd creates the root cobra command for agencyctl.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "agencyctl",
		Short:         "Operate the talent agency service",
		Long:          "agencyctl manages admin accounts and database migrations for the talent agency service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", DefaultConfigPath(), "Path to config.yaml (or APP_CONFIG_FILE env)")

	root.AddCommand(
		newAdminCmd(),
		newMigrateCmd(),
	)
	return root
}

// Execute runs the CLI and reports the error on stderr.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// DefaultConfigPath prefers APP_CONFIG_FILE, then ./config.yaml if present,
// and finally no file at all (defaults plus environment).
func DefaultConfigPath() string {
	if p := os.Getenv("APP_CONFIG_FILE"); p != "" {
		return p
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

// env is what every database-backed command needs.
type env struct {
	cfg  *config.Config
	log  zerolog.Logger
	repo *repository.Repository
}

func connect(ctx context.Context) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	// keep stdout clean for command output
	cfg.Logger.OutputTarget = "stderr"
	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return nil, err
	}
	repo, err := repository.New(ctx, cfg, &log)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, log: log, repo: repo}, nil
}
