package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gentle-app/gentle-api/internal/middleware"
	"github.com/gentle-app/gentle-api/internal/modules/serializer"
	"github.com/gentle-app/gentle-api/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

type CreateTaskReq struct {
	Title string `json:"title" binding:"required" example:"Clean kitchen"`
}

// ListTasks godoc
//
//	@Summary		List tasks
//	@Description	All tasks of the current user, newest first
//	@Tags			task
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Task}
//	@Router			/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	tasks, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: tasks})
}

// GetTask godoc
//
//	@Summary		Task detail
//	@Description	One task with its steps ordered ascending
//	@Tags			task
//	@Produce		json
//	@Param			task_id	path	string	true	"Task ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Task}
//	@Router			/tasks/{task_id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	task, err := h.svc.GetDetail(c.Request.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: task})
}

// CreateTask godoc
//
//	@Summary		Create task
//	@Description	Create a task in pending state
//	@Tags			task
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateTaskReq	true	"CreateTask payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Task}
//	@Router			/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	req := CreateTaskReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	task, err := h.svc.Create(c.Request.Context(), userID, req.Title)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: task})
}

// BreakdownTask godoc
//
//	@Summary		Break a task into steps
//	@Description	Generate ordered steps for the task, optionally sized to the given mood context
//	@Tags			task
//	@Produce		json
//	@Param			task_id	path	string	true	"Task ID"	format(uuid)
//	@Param			energy	query	integer	false	"Current energy level"
//	@Param			emotion	query	string	false	"Current emotion"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Step}
//	@Router			/tasks/{task_id}/breakdown [post]
func (h *TaskHandler) BreakdownTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	var energy *int
	if raw := c.Query("energy"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid energy", err))
			return
		}
		energy = &n
	}
	emotion := c.Query("emotion")

	steps, err := h.svc.Breakdown(c.Request.Context(), taskID, userID, energy, emotion)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Task not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: steps})
}
