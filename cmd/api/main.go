package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/home-financing/internal/config"
	"github.com/Dan9191/home-financing/internal/handler"
	"github.com/Dan9191/home-financing/internal/integrations/cbr"
	"github.com/Dan9191/home-financing/internal/scheduler"
	"github.com/Dan9191/home-financing/internal/service"
	"github.com/Dan9191/home-financing/internal/utils/email"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	if cfg.ClientSecretHash == "" {
		logger.Warn("CLIENT_SECRET_HASH is not set, token issuance is disabled")
	}

	// Reference rate
	cbrClient := cbr.NewClient(cfg, logger)
	rates := service.NewRateCache(cbrClient, cfg.DefaultInterestRate, logger)
	sched := scheduler.New(logger, 30*time.Second)
	if err := sched.Add(cfg.RateRefreshSchedule, "reference-rate", rates); err != nil {
		logger.Fatalf("Failed to schedule rate refresh: %v", err)
	}
	go sched.RunNow("reference-rate", rates)
	sched.Start()
	defer sched.Stop()

	// Initialize layers
	svc := service.NewService(rates, logger)
	auth := service.NewAuthenticator(cfg, logger)
	mailer := email.NewSender(cfg, logger)
	h := handler.NewHandler(svc, auth, cbrClient, rates, mailer, cfg.HMACSecret, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("Shutting down server")
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
