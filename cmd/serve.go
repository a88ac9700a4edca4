package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/teamlens/teamlens/internal/server"
)

var (
	servePort     int
	serveAllowAll bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the profile search and Q&A API over HTTP",
	Long: `Starts an HTTP server exposing semantic search, question answering,
team statistics, the HTML report, and a WebSocket chat endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		store, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		engine, err := newEngine(cfg, store)
		if err != nil {
			return err
		}

		_, _, _, analysis, err := correlateSnapshot(cfg)
		if err != nil {
			return err
		}

		history, err := openHistory(cfg)
		if err != nil {
			log.Printf("opening history database: %v (history disabled)", err)
			history = nil
		} else {
			defer history.Close()
		}

		port := cfg.Serve.Port
		if servePort != 0 {
			port = servePort
		}
		srv := server.New(server.Config{
			Port:     port,
			AllowAll: serveAllowAll || cfg.Serve.AllowAllOrigins,
		}, store, engine, analysis, history)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("server: %w", err)
		case sig := <-sigCh:
			fmt.Fprintf(os.Stderr, "\nReceived %s, shutting down\n", sig)
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveAllowAll, "allow-all-origins", false, "allow all CORS origins")
	rootCmd.AddCommand(serveCmd)
}
