package handler

import (
	"errors"
	"net/http"

	"github.com/gentle-app/gentle-api/internal/middleware"
	"github.com/gentle-app/gentle-api/internal/modules/serializer"
	"github.com/gentle-app/gentle-api/internal/modules/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StepHandler struct {
	svc service.StepService
}

func NewStepHandler(s service.StepService) *StepHandler {
	return &StepHandler{svc: s}
}

// CompleteStep godoc
//
//	@Summary		Complete a step
//	@Description	Mark a step done, record a celebration and complete the task when it was the last pending step
//	@Tags			step
//	@Produce		json
//	@Param			step_id	path	string	true	"Step ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.CompleteOutput}
//	@Router			/steps/{step_id}/complete [post]
func (h *StepHandler) CompleteStep(c *gin.Context) {
	stepID, err := uuid.Parse(c.Param("step_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	out, err := h.svc.Complete(c.Request.Context(), stepID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Step not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}

// RebalanceStep godoc
//
//	@Summary		Break down a too-big step
//	@Description	Append 2-4 smaller sub-steps after the task's current maximum order; the original step is left untouched
//	@Tags			step
//	@Produce		json
//	@Param			step_id	path	string	true	"Step ID"	format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Step}
//	@Router			/steps/{step_id}/too-big [post]
func (h *StepHandler) RebalanceStep(c *gin.Context) {
	stepID, err := uuid.Parse(c.Param("step_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	steps, err := h.svc.Rebalance(c.Request.Context(), stepID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Step not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: steps})
}
