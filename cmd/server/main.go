package main

import (
    "context"
    "log"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/railway-platform-reservation/internal/booking"
    "github.com/iliyamo/railway-platform-reservation/internal/config"
    "github.com/iliyamo/railway-platform-reservation/internal/database"
    "github.com/iliyamo/railway-platform-reservation/internal/handler"
    "github.com/iliyamo/railway-platform-reservation/internal/middleware"
    "github.com/iliyamo/railway-platform-reservation/internal/queue"
    "github.com/iliyamo/railway-platform-reservation/internal/repository"
    "github.com/iliyamo/railway-platform-reservation/internal/router"
)

func main() {
    // .env is optional; real deployments set variables directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer func() { _ = db.Close() }()

    // Redis is optional: without it the rate limiter and response
    // cache become pass-throughs.
    rdb := config.NewRedisClient()

    platformRepo := repository.NewPlatformRepo(db)
    bookingRepo := repository.NewBookingRepo(db)
    ticketRepo := repository.NewTicketRepo(db)
    paymentRepo := repository.NewPaymentRepo(db)
    userRepo := repository.NewUserRepo(db)
    tokenRepo := repository.NewTokenRepo(db)

    // Seed the default platforms on first start so a fresh install is
    // immediately bookable.
    seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    if err := platformRepo.Seed(seedCtx); err != nil {
        log.Printf("platform seed skipped: %v", err)
    }
    cancel()

    engine := booking.NewEngine(platformRepo, bookingRepo, ticketRepo, paymentRepo,
        booking.WithRate(cfg.RatePerHour))

    authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
    bookingHandler := handler.NewBookingHandler(engine, platformRepo, bookingRepo, ticketRepo, paymentRepo)
    adminHandler := handler.NewAdminHandler(engine, platformRepo, bookingRepo, ticketRepo, paymentRepo, userRepo)

    // Background consumer mirrors activated tickets to logs/ticket.log.
    go func() {
        if err := queue.StartTicketConsumer(); err != nil {
            log.Printf("ticket consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    e.HideBanner = true

    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authHandler, cfg.JWTSecret)
    router.RegisterPublic(e, bookingHandler, cacheMW)
    router.RegisterUser(e, bookingHandler, cfg.JWTSecret)
    router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
