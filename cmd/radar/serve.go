package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"eventradar/internal/config"
	"eventradar/internal/logger"
	"eventradar/internal/scheduler"
	transporthttp "eventradar/internal/transport/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the scheduled digest and the preview API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)

			pipeline, ingest, err := buildPipeline(cfg, log)
			if err != nil {
				return err
			}

			sched, err := scheduler.New(cfg.Timezone, log)
			if err != nil {
				return fmt.Errorf("init scheduler: %w", err)
			}
			err = sched.AddDailyJob("digest", cfg.DigestTime, func(ctx context.Context) error {
				if _, err := pipeline.Run(ctx); err != nil {
					return err
				}
				ingest.PruneOlderThan(time.Now().UTC().Add(-cfg.MaxAge))
				return nil
			})
			if err != nil {
				return fmt.Errorf("schedule digest: %w", err)
			}
			sched.Start()

			server := transporthttp.NewServer(pipeline, cfg.MaxPosts, ingest)
			httpServer := &http.Server{
				Addr:         cfg.ListenAddr,
				Handler:      withLogging(withCORS(server.Routes()), log),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 90 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				log.Info("API listening", "addr", cfg.ListenAddr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("listen failed", "error", err)
					os.Exit(1)
				}
			}()

			// Graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Info("signal received, shutting down", "signal", sig.String())

			<-sched.Stop().Done()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(ctx); err != nil {
				log.Error("graceful shutdown failed", "error", err)
			}
			return nil
		},
	}
}

// Middleware: request logging
func withLogging(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info("request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

// Middleware: permissive CORS for the preview frontend
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
