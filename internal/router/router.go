package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/gentle-app/gentle-api/docs"
	"github.com/gentle-app/gentle-api/internal/config"
	"github.com/gentle-app/gentle-api/internal/middleware"
	"github.com/gentle-app/gentle-api/internal/modules/handler"
	"github.com/gentle-app/gentle-api/internal/modules/serializer"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config      *config.Config
	Log         *zap.Logger
	Verifier    middleware.TokenVerifier
	MoodHandler *handler.MoodHandler
	TaskHandler *handler.TaskHandler
	StepHandler *handler.StepHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/v1")
	{
		v1.Use(middleware.UserAuth(d.Config, d.Verifier, d.Log))

		mood := v1.Group("/mood")
		{
			mood.POST("/checkin", d.MoodHandler.Checkin)
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", d.TaskHandler.ListTasks)
			tasks.POST("", d.TaskHandler.CreateTask)
			tasks.GET("/:task_id", d.TaskHandler.GetTask)
			tasks.POST("/:task_id/breakdown", d.TaskHandler.BreakdownTask)
		}

		steps := v1.Group("/steps")
		{
			steps.POST("/:step_id/complete", d.StepHandler.CompleteStep)
			steps.POST("/:step_id/too-big", d.StepHandler.RebalanceStep)
		}
	}
	return r
}
