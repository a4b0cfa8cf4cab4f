package main // Entry point for the Blockflix API server

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/blockflix/blockflix/internal/config"
	"github.com/blockflix/blockflix/internal/database"
	"github.com/blockflix/blockflix/internal/handler"
	"github.com/blockflix/blockflix/internal/middleware"
	"github.com/blockflix/blockflix/internal/queue"
	"github.com/blockflix/blockflix/internal/repository"
	"github.com/blockflix/blockflix/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	store := repository.NewStore(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, store.Users), cfg.JWTSecret)

	// Redis is optional: a nil client turns the cache middleware into
	// a pass-through.
	rdb := config.NewRedisClient()
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	router.RegisterStore(e,
		handler.NewFilmHandler(store.Films),
		handler.NewPaymentHandler(store.Payments),
		handler.NewRentalHandler(store.Rentals, store.Films),
		cfg.JWTSecret, cacheMW)

	// Background consumer mirroring rental activity into logs/rental.log.
	go func() {
		if err := queue.StartRentalConsumer(); err != nil {
			log.Printf("rental consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
