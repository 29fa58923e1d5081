package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/maxviazov/talent-agency-service/internal/auth"
	"github.com/maxviazov/talent-agency-service/internal/repository/postgres"
	"github.com/maxviazov/talent-agency-service/internal/service"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage back-office accounts",
	}
	cmd.AddCommand(newAdminCreateCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var in service.AdminInput
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Example: `  agencyctl admin create --email owner@agency.example --password 'S3cure-pass' --name "Studio Owner"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name != "" {
				in.Name = &name
			}
			ctx := cmd.Context()
			e, err := connect(ctx)
			if err != nil {
				return err
			}
			defer e.repo.Close()

			tokens := auth.NewTokenIssuer(e.cfg.Auth.JWTSecret, e.cfg.Auth.Issuer, e.cfg.Auth.SessionTTL)
			svc := service.NewAdminService(postgres.NewAdminRepository(e.repo.Pool()), tokens, auth.NewMemoryRevoker(), e.log)
			return createAdmin(ctx, svc, in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "Admin email (required)")
	cmd.Flags().StringVar(&in.Password, "password", "", "Admin password: 8+ characters with upper, lower and a digit (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// createAdmin turns validation failures into one readable line per field.
func createAdmin(ctx context.Context, svc service.AdminService, in service.AdminInput, out io.Writer) error {
	a, err := svc.CreateAdmin(ctx, in)
	if err != nil {
		if fe := service.FieldErrors(err); len(fe) > 0 {
			msg := "invalid admin:"
			for _, f := range fe {
				msg += fmt.Sprintf("\n  %s %s", f.Field, f.Message)
			}
			return errors.New(msg)
		}
		return err
	}
	fmt.Fprintf(out, "admin created: %s (%s)\n", a.Email, a.ID)
	return nil
}
