package main

//	@title			Gentle API
//	@version		1.0
//	@description	Mood-aware task breakdown API.
//	@schemes		http https
//	@BasePath		/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Supabase JWT (e.g., "Bearer eyJhbGciOi...")

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gentle-app/gentle-api/internal/auth"
	"github.com/gentle-app/gentle-api/internal/bootstrap"
	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/gentle-app/gentle-api/internal/modules/handler"
	"github.com/gentle-app/gentle-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	moodHandler := do.MustInvoke[*handler.MoodHandler](inj)
	taskHandler := do.MustInvoke[*handler.TaskHandler](inj)
	stepHandler := do.MustInvoke[*handler.StepHandler](inj)
	verifier := do.MustInvoke[*auth.Verifier](inj)

	engine := router.NewRouter(router.RouterDeps{
		Config:      cfg,
		Log:         log,
		Verifier:    verifier,
		MoodHandler: moodHandler,
		TaskHandler: taskHandler,
		StepHandler: stepHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
