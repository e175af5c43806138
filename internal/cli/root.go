// Package cli implements the carparts command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carparts/carparts-api/internal/infrastructure/config"
	"github.com/carparts/carparts-api/pkg/logger"
)

const serviceName = "carparts-api"

func newRootCmd(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "carparts",
		Short:         "Car parts shop API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	root.AddCommand(newAdminCmd())
	return root
}

// Execute runs the root command.
func Execute(version string) error {
	if err := newRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// bootstrap loads the configuration and initialises the process logger.
// Commands then take their loggers from logger.Component.
func bootstrap(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})
	return cfg, nil
}
