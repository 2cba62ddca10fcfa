package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/sandeepkv93/noozes/internal/model"
	"github.com/sandeepkv93/noozes/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand(app *App) *cobra.Command {
	var host string
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				app.cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				app.cfg.Port = port
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(app.cfg, model.NewCalculator(app.Now), app.logger, Version)
			color.New(color.FgGreen).Fprintf(app.Err, "noozes v%s listening on http://%s\n", Version, app.cfg.Addr())
			return srv.Run(ctx, app.cfg.Addr())
		},
	}
	cmd.Flags().StringVar(&host, "host", "", "listen host (default from NOOZES_HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from NOOZES_PORT)")
	return cmd
}
