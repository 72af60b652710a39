package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ms-shaziya7/capture-moments/api"
	"github.com/ms-shaziya7/capture-moments/config"
	"github.com/ms-shaziya7/capture-moments/internal/bootstrap"
	"github.com/ms-shaziya7/capture-moments/internal/cache"
	"github.com/ms-shaziya7/capture-moments/internal/kafka"
	"github.com/ms-shaziya7/capture-moments/internal/logging"
	"github.com/ms-shaziya7/capture-moments/internal/service/auth"
	"github.com/ms-shaziya7/capture-moments/internal/service/booking"
	"github.com/ms-shaziya7/capture-moments/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logCloser := logging.Setup(cfg.Log)
	defer logCloser.Close()

	if cfg.HTTP.Mode != "" {
		gin.SetMode(cfg.HTTP.Mode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("open %s storage: %v", cfg.Storage.Backend, err)
	}
	defer store.close()
	log.Printf("using %s storage", cfg.Storage.Backend)

	var bookingOpts []booking.BookingServiceOption
	var authOpts []auth.AuthServiceOption

	if cfg.Redis.Enabled {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.HistoryCacheTTL())
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis unavailable, history cache disabled: %v", err)
		} else {
			bookingOpts = append(bookingOpts, booking.WithCache(redisCache))
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: %v", err)
		}
		bookingOpts = append(bookingOpts,
			booking.WithProducer(producer, cfg.Kafka.BookingTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
		authOpts = append(authOpts, auth.WithProducer(producer, cfg.Kafka.NotificationsTopic))
	}
	authOpts = append(authOpts, auth.WithBcryptCost(cfg.Auth.BcryptCost))

	authService := auth.NewAuthService(store.users, authOpts...)
	bookingService := booking.NewBookingService(store.bookings, bookingOpts...)

	seeds := make([]auth.SignupInput, 0, len(cfg.Auth.SeedUsers))
	for _, u := range cfg.Auth.SeedUsers {
		seeds = append(seeds, auth.SignupInput{Name: u.Name, Email: u.Email, Password: u.Password})
	}
	if err := authService.Seed(ctx, seeds...); err != nil {
		log.Fatalf("seed users: %v", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Auth:           authService,
		Bookings:       bookingService,
		Sessions:       session.NewStore(cfg.Session),
		RequestTimeout: cfg.HTTP.RequestTimeout(),
	})

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
