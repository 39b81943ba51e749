package main

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/portconnect/portconnect-backend/internal/config"
    "github.com/portconnect/portconnect-backend/internal/database"
    "github.com/portconnect/portconnect-backend/internal/handler"
    "github.com/portconnect/portconnect-backend/internal/middleware"
    "github.com/portconnect/portconnect-backend/internal/queue"
    "github.com/portconnect/portconnect-backend/internal/repository"
    "github.com/portconnect/portconnect-backend/internal/router"
)

func main() {
    // .env is optional; real deployments set the environment directly.
    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    // Redis is optional: nil client disables caching and rate limiting.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; cache and rate limiting disabled")
    }

    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    ports := repository.NewPortRepo(db)
    services := repository.NewServiceRepo(db)
    reservations := repository.NewReservationRepo(db)

    authH := handler.NewAuthHandler(cfg, users, tokens, ports)
    captainH := handler.NewCaptainHandler(reservations, services)
    providerH := handler.NewProviderHandler(reservations)
    providerSvcH := handler.NewProviderServiceHandler(services, ports)
    terminalH := handler.NewTerminalHandler(reservations, services)
    publicH := handler.NewPublicHandler(ports, services)

    e := echo.New()
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterPublic(e, publicH, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
    router.RegisterCaptain(e, captainH, cfg.JWTSecret)
    router.RegisterProvider(e, providerH, providerSvcH, cfg.JWTSecret)
    router.RegisterTerminal(e, terminalH, cfg.JWTSecret)

    // Background consumer appends reservation events to logs/reservation.log.
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
