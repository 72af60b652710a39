package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ms-shaziya7/capture-moments/config"
	"github.com/ms-shaziya7/capture-moments/internal/email"
	"github.com/ms-shaziya7/capture-moments/internal/kafka"
	"github.com/ms-shaziya7/capture-moments/internal/logging"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer, err := kafka.NewConsumer(cfg.Kafka)
	if err != nil {
		log.Fatalf("create consumer: %v", err)
	}
	defer consumer.Close()

	sender := email.NewSender(log.Default())

	log.Printf("worker consuming %s as %s", consumer.Topic(), cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, func(ctx context.Context, _, value []byte) error {
		return sender.Handle(ctx, value)
	}); err != nil {
		log.Printf("consumer stopped: %v", err)
	}
	log.Printf("worker shut down")
}
