package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-reservation/internal/booking"
	"github.com/iliyamo/property-reservation/internal/config"
	"github.com/iliyamo/property-reservation/internal/database"
	"github.com/iliyamo/property-reservation/internal/handler"
	"github.com/iliyamo/property-reservation/internal/queue"
	"github.com/iliyamo/property-reservation/internal/repository"
	"github.com/iliyamo/property-reservation/internal/router"
	queue_publisher "github.com/iliyamo/property-reservation/internal/service"
	"github.com/iliyamo/property-reservation/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional; cache and rate limiting degrade to pass-through
	// when the client is nil.
	rdb := config.NewRedisClient()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	clients := repository.NewClientRepo(db)
	properties := repository.NewPropertyRepo(db)
	reservations := repository.NewReservationRepo(db)

	store := repository.NewStore(clients, reservations)
	svc := booking.NewService(store, time.Now, utils.NewID)

	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterAPI(e, router.APIDeps{
		JWTSecret:    cfg.JWTSecret,
		Redis:        rdb,
		Clients:      handler.NewClientHandler(clients),
		Properties:   handler.NewPropertyHandler(properties),
		Reservations: handler.NewReservationHandler(svc, clients, properties, queue_publisher.PublishReservationStatus),
		Availability: handler.NewAvailabilityHandler(properties, reservations),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
