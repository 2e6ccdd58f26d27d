package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cipherworks/cipherlab/internal/httpapi"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr    string
	Origins []string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API server.

Routes:
  GET  /api/v1/health      - liveness check
  GET  /api/v1/algorithms  - list registered ciphers
  POST /api/v1/transform   - run a transform

The server is stateless; stop it with Ctrl-C.

Examples:
  cipherlab serve --addr :8080
  cipherlab serve --addr 127.0.0.1:9090 --origin http://localhost:3000`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "listen address")
	cmd.Flags().StringArrayVar(&opts.Origins, "origin", nil, "allowed CORS origin (repeatable; default allows all)")

	return cmd
}

func runServe(opts *ServeOptions, cmd *cobra.Command) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(httpapi.Config{AllowOrigins: opts.Origins}, log)

	srv := &http.Server{
		Addr:    opts.Addr,
		Handler: router,
	}

	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			log.WithField("signal", sig.String()).Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
	}()

	errChan := make(chan error, 1)
	go func() {
		log.WithField("addr", opts.Addr).Info("server starting")
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitCommandError, "server error", err)
		}
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return WrapExitError(ExitFailure, "shutdown error", err)
		}
		log.Info("server stopped")
	}

	return nil
}
