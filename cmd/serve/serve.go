// Package serve runs the HTTP surface
package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"askbudget/budget-buddy/cmd/root"
	"askbudget/budget-buddy/internal/api"
	"askbudget/budget-buddy/internal/container"
	"askbudget/budget-buddy/internal/logging"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var address string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload and tag endpoints over HTTP",
	Long: `Serve the statement upload (POST /upload/) and vendor tagging (POST /tag/)
endpoints used by the dashboard.`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&address, "addr", "a", "", "Listen address (default: server.address from config)")
}

// NewServer builds the HTTP server for the container's configuration.
func NewServer(c *container.Container, addr string) *http.Server {
	cfg := c.GetConfig()
	if addr == "" {
		addr = cfg.Server.Address
	}

	handlers := api.NewHandlers(c.GetParser(), c.GetResolver(), cfg.Server.MaxUploadBytes(), c.GetLogger())
	return &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(handlers, cfg.Server.AllowedOrigins, c.GetLogger()),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func serveFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application is not initialized")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := NewServer(c, address)
	errCh := make(chan error, 1)
	go func() {
		root.Log.Info("Starting HTTP server", logging.Field{Key: "address", Value: srv.Addr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	root.Log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
