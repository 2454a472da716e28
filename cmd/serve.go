package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/traindelay/internal/dashboard"
	"github.com/ziadkadry99/traindelay/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long:  `Loads the train rides CSV once and serves the dashboard with sidebar navigation, plot images and a JSON API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		renderer, ds, err := newRenderer(ctx, cfg)
		if err != nil {
			return err
		}
		defer ds.Close()

		dash, err := dashboard.New(renderer, cfg.Title, cfg.FigsDir)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		})
		dash.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "traindelay v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Dataset: %s (%d records)\n", ds.Source(), ds.Len())
		fmt.Fprintf(os.Stderr, "  Figures: %s\n", cfg.FigsDir)

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8501, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
