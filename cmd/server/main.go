package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Maaz9703/maazweb-api/internal/config"
	"github.com/Maaz9703/maazweb-api/internal/db"
	"github.com/Maaz9703/maazweb-api/internal/events"
	"github.com/Maaz9703/maazweb-api/internal/httpserver"
	"github.com/Maaz9703/maazweb-api/internal/logging"
	loggingmw "github.com/Maaz9703/maazweb-api/internal/middleware/logging"
	"github.com/Maaz9703/maazweb-api/internal/payments"
	"github.com/Maaz9703/maazweb-api/internal/repo"
	"github.com/Maaz9703/maazweb-api/internal/search"
	"github.com/Maaz9703/maazweb-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var index *search.Index
	if cfg.ESURL != "" {
		es, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("elasticsearch unavailable, search falls back to SQL", "error", err)
		} else {
			index = search.NewIndex(es)
		}
	}

	stripeClient := payments.NewClient(cfg.StripeSecretKey)
	if !stripeClient.Configured() {
		logger.Warn("STRIPE_SECRET_KEY not set, payment intents disabled")
	}

	r := &repo.GormRepo{DB: gdb}

	deps := &httpserver.Deps{
		Auth:      &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, Producer: producer, JWTSecret: cfg.JWTSecret}},
		Products:  &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: r, Producer: producer, Search: index}},
		Orders:    &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r, Producer: producer}, Payments: &service.PaymentService{Repo: r, Stripe: stripeClient}},
		Coupons:   &httpserver.CouponHTTP{Svc: &service.CouponService{Repo: r}},
		Addresses: &httpserver.AddressHTTP{Svc: &service.AddressService{Repo: r}},
		Wishlist:  &httpserver.WishlistHTTP{Svc: &service.WishlistService{Repo: r}},
		Reviews:   &httpserver.ReviewHTTP{Svc: &service.ReviewService{Repo: r}},
		Settings:  &httpserver.SettingsHTTP{Svc: &service.SettingsService{Repo: r}},
		Users:     &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}},
		JWTSecret: cfg.JWTSecret,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())
	e.HTTPErrorHandler = httpserver.ErrorHandler()

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = producer.Close()

	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("stopped")
}
