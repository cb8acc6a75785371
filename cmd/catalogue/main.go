package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/openmusicarchive/catalogue/internal/catalogue/store"
	"github.com/openmusicarchive/catalogue/internal/config"
	"github.com/openmusicarchive/catalogue/internal/httpapi"
	"github.com/openmusicarchive/catalogue/internal/supabase"
	"github.com/openmusicarchive/catalogue/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "Path to the YAML config file")
	flag.Parse()

	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := supabase.New(supabase.Config{
		URL:        cfg.Supabase.URL,
		ServiceKey: cfg.Supabase.ServiceKey,
	})
	if err != nil {
		log.Fatal("init supabase client", "error", err)
	}

	st := store.New(db, log)
	router := httpapi.NewRouter(cfg, st, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("catalogue API listening", "port", cfg.Server.Port, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
	log.Info("server stopped")
}
