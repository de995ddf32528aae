package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/helios/internal/app"
	"github.com/nfrund/helios/internal/config"
	"github.com/nfrund/helios/internal/logging"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Helios web server",
	Long: `Loads configuration from the environment (and .env when present), then
serves the site until SIGINT or SIGTERM, finishing in-flight requests first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.New()
		if serveAddr != "" {
			cfg.ServerAddr = serveAddr
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

		a, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		defer a.Shutdown()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return a.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address, overrides SERVER_ADDR")
	rootCmd.AddCommand(serveCmd)
}
