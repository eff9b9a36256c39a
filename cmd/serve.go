package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/accucheck/accucheck-cli/internal/server"
)

var serveListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis pipeline over HTTP",
	Long:  `Starts an HTTP API: POST /api/datasets to upload a table, GET /api/sessions/{id} for the transcript, POST /api/sessions/{id}/turns to chat. Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		addr := serveListenAddr
		if addr == "" {
			addr = c.ListenAddr
		}

		log := newLogger(c.LogLevel)
		defer log.Sync() //nolint:errcheck

		apiCom, err := buildCommentator("", "")
		if err != nil {
			return err
		}
		srv := server.New(log, apiCom)

		httpSrv := &http.Server{
			Addr:              addr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("listening", zap.String("addr", addr), zap.Bool("ai_enabled", apiCom.Enabled()))
			errCh <- httpSrv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}

func newLogger(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg = zap.NewDevelopmentConfig()
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", "", "listen address (default from config, :8080)")
	rootCmd.AddCommand(serveCmd)
}
