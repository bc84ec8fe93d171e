package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuspay/smartcard-backend/internal/api"
	"github.com/campuspay/smartcard-backend/internal/api/handlers"
	"github.com/campuspay/smartcard-backend/internal/config"
	"github.com/campuspay/smartcard-backend/internal/db"
	"github.com/campuspay/smartcard-backend/internal/gateway"
	"github.com/campuspay/smartcard-backend/internal/logger"
	"github.com/campuspay/smartcard-backend/internal/metrics"
	"github.com/campuspay/smartcard-backend/internal/notify"
	"github.com/campuspay/smartcard-backend/internal/repository/postgres"
	"github.com/campuspay/smartcard-backend/internal/services"
	"github.com/campuspay/smartcard-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4)
	defer wp.Stop()

	gw := gateway.NewRazorpay(cfg.GatewayBaseURL, cfg.GatewayKeyID, cfg.GatewayKeySecret)
	provider := notify.NewTwilioProvider(cfg.SMSBaseURL, cfg.SMSAccountSID, cfg.SMSAuthToken)
	bridge := notify.NewBridge(provider, wp, log)

	paymentSvc := services.NewPaymentService(repos.Students, repos.Vendors, repos.Transactions, gw, bridge, cfg.Currency)
	studentSvc := services.NewStudentService(repos.Students, repos.Transactions)
	vendorSvc := services.NewVendorService(repos.Vendors, repos.Transactions)

	r := api.NewRouter(cfg, api.RouterDeps{
		Payments: handlers.NewPaymentHandler(paymentSvc),
		Students: handlers.NewStudentHandler(studentSvc),
		Vendors:  handlers.NewVendorHandler(vendorSvc),
		OTP:      handlers.NewOTPHandler(bridge),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
