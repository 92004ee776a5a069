package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gentle-app/gentle-api/internal/bootstrap"
	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/gentle-app/gentle-api/internal/infra/queue"
	"github.com/gentle-app/gentle-api/internal/pkg/genai"
	"github.com/gentle-app/gentle-api/internal/worker"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	conn := do.MustInvoke[*amqp.Connection](inj)
	rdb := do.MustInvoke[*redis.Client](inj)
	gen := do.MustInvoke[*genai.Generator](inj)

	consumer, err := queue.NewConsumer(conn, cfg.RabbitMQ.Queue, cfg.RabbitMQ.Prefetch, log)
	if err != nil {
		log.Sugar().Fatalw("consumer setup failed", "queue", cfg.RabbitMQ.Queue, "err", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	celebrations := worker.NewCelebrations(rdb, gen, log)

	log.Sugar().Infow("worker started", "queue", cfg.RabbitMQ.Queue)
	if err := consumer.Run(ctx, celebrations.Handle); err != nil && !errors.Is(err, context.Canceled) {
		log.Sugar().Fatalw("consumer stopped", "err", err)
	}
	log.Sugar().Info("worker exited")
}
