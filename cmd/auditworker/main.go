package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/contact-management/cmd/config"
	"github.com/muhammadheryan/contact-management/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-management/utils/logger"
	"go.uber.org/zap"
)

// The audit worker drains the audit queue and writes every address book
// mutation to the structured log.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("audit worker running")
	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal("audit worker stopped", zap.Error(err))
	}
}
