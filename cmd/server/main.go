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

	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/api/handler"
	"github.com/michaeltheo/placements-backend/internal/api/router"
	"github.com/michaeltheo/placements-backend/internal/repository"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/internal/sms"
	"github.com/michaeltheo/placements-backend/internal/sso"
	"github.com/michaeltheo/placements-backend/internal/storage"
	"github.com/michaeltheo/placements-backend/pkg/database"
	"github.com/michaeltheo/placements-backend/pkg/jwt"
	"github.com/michaeltheo/placements-backend/pkg/logger"
	"github.com/michaeltheo/placements-backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := database.Migrate(&cfg.Database, log); err != nil {
		return err
	}

	db, err := database.NewDB(&cfg.Database, log)
	if err != nil {
		return err
	}

	redisClient, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	store, err := storage.NewLocalStore(cfg.Storage.Root)
	if err != nil {
		return err
	}

	jwtManager := jwt.NewManager(&cfg.Auth)
	ssoClient := sso.NewClient(&cfg.SSO)
	smsSender := sms.NewSender(&cfg.SMS, log)

	repo := repository.New(db)
	svc := service.New(cfg, repo, jwtManager, redisClient, ssoClient, smsSender, store, log)
	h := handler.New(cfg, svc, log)
	engine := router.New(cfg, h, jwtManager, redisClient, log)

	// Expired codes are swept in the background for the process lifetime.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go svc.OTP.StartSweeper(sweepCtx)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	stopSweep()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
