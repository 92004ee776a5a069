package bootstrap

import (
	"github.com/gentle-app/gentle-api/internal/auth"
	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/gentle-app/gentle-api/internal/infra/cache"
	"github.com/gentle-app/gentle-api/internal/infra/db"
	"github.com/gentle-app/gentle-api/internal/infra/logger"
	"github.com/gentle-app/gentle-api/internal/infra/queue"
	"github.com/gentle-app/gentle-api/internal/modules/handler"
	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/gentle-app/gentle-api/internal/modules/repo"
	"github.com/gentle-app/gentle-api/internal/modules/service"
	"github.com/gentle-app/gentle-api/internal/pkg/genai"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.User{},
				&model.Mood{},
				&model.Task{},
				&model.Step{},
				&model.Celebration{},
				&model.AISession{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ Connection
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// Celebration queue publisher
	do.Provide(inj, func(i *do.Injector) (*queue.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			cfg.RabbitMQ.Queue,
			do.MustInvoke[*zap.Logger](i),
		)
	})

	// AI generator
	do.Provide(inj, func(i *do.Injector) (*genai.Generator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return genai.New(cfg.OpenAI, do.MustInvoke[*zap.Logger](i)), nil
	})

	// Token verifier
	do.Provide(inj, func(i *do.Injector) (*auth.Verifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return auth.NewVerifier(cfg.Auth), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.MoodRepo, error) {
		return repo.NewMoodRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaskRepo, error) {
		return repo.NewTaskRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.StepRepo, error) {
		return repo.NewStepRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AISessionRepo, error) {
		return repo.NewAISessionRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.MoodService, error) {
		return service.NewMoodService(
			do.MustInvoke[repo.MoodRepo](i),
			do.MustInvoke[repo.AISessionRepo](i),
			do.MustInvoke[*genai.Generator](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaskService, error) {
		return service.NewTaskService(
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.AISessionRepo](i),
			do.MustInvoke[*genai.Generator](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.StepService, error) {
		return service.NewStepService(
			do.MustInvoke[repo.StepRepo](i),
			do.MustInvoke[repo.TaskRepo](i),
			do.MustInvoke[repo.AISessionRepo](i),
			do.MustInvoke[*genai.Generator](i),
			do.MustInvoke[*queue.Publisher](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.MoodHandler, error) {
		return handler.NewMoodHandler(do.MustInvoke[service.MoodService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaskHandler, error) {
		return handler.NewTaskHandler(do.MustInvoke[service.TaskService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.StepHandler, error) {
		return handler.NewStepHandler(do.MustInvoke[service.StepService](i)), nil
	})

	return inj
}
