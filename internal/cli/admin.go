package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carparts/carparts-api/internal/core/domain"
	mongodb "github.com/carparts/carparts-api/internal/infrastructure/db/mongo"
	"github.com/carparts/carparts-api/pkg/logger"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tasks against the store",
	}
	admin.AddCommand(&cobra.Command{
		Use:   "promote <email>",
		Short: "Grant the admin role to an email directly in the store",
		Long: `Grant the admin role to an email directly in the store.

The HTTP promote route requires an existing admin; use this command to
create the first one. The user must have logged in at least once. A
configured role cache picks the change up once its entry expires.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromote(cmd.Context(), cmd, args[0])
		},
	})
	return admin
}

func runPromote(ctx context.Context, cmd *cobra.Command, email string) error {
	cfg, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	log := logger.Component("admin")

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	res, err := mongodb.NewUserRepository(db).SetRole(ctx, email, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no user with email %q", email)
	}
	log.Info().Str("email", email).Msg("admin role granted")
	fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", email)
	return nil
}
