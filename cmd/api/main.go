package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopfront/internal/config"
	"shopfront/internal/db"
	"shopfront/internal/httpserver"
	orderrepo "shopfront/internal/repository/order"
	productrepo "shopfront/internal/repository/product"
	cartsvc "shopfront/internal/service/cart"
	checkoutsvc "shopfront/internal/service/checkout"
	identitysvc "shopfront/internal/service/identity"
	"shopfront/internal/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	// REDIS_ADDR="" keeps carts in process memory; fine for local runs,
	// useless behind more than one replica.
	var sessionStore session.Store
	if cfg.RedisAddr == "" {
		logger.Printf("REDIS_ADDR empty, using in-memory session store")
		sessionStore = session.NewMemoryStore()
	} else {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer redisClient.Close()
		sessionStore = session.NewRedisStore(redisClient, cfg.CartTTL)
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	cartService := cartsvc.New(sessionStore, productRepo, logger)
	checkoutService := checkoutsvc.New(sessionStore, productRepo, orderRepo, logger)
	identityService := identitysvc.New()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		OrderRepo:   orderRepo,
		IdentitySvc: identityService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
