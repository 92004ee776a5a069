package handler

import (
	"net/http"

	"github.com/gentle-app/gentle-api/internal/middleware"
	"github.com/gentle-app/gentle-api/internal/modules/serializer"
	"github.com/gentle-app/gentle-api/internal/modules/service"
	"github.com/gin-gonic/gin"
)

type MoodHandler struct {
	svc service.MoodService
}

func NewMoodHandler(s service.MoodService) *MoodHandler {
	return &MoodHandler{svc: s}
}

type MoodCheckinReq struct {
	Energy  int     `json:"energy" binding:"min=0,max=4" example:"2"`
	Emotion string  `json:"emotion" binding:"required" example:"anxious"`
	Note    *string `json:"note" example:"Feeling overwhelmed with work"`
}

// Checkin godoc
//
//	@Summary		Mood check-in
//	@Description	Record a mood check-in and receive a gentle tiny-step suggestion sized to it
//	@Tags			mood
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.MoodCheckinReq	true	"Check-in payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.CheckinOutput}
//	@Router			/mood/checkin [post]
func (h *MoodHandler) Checkin(c *gin.Context) {
	req := MoodCheckinReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	out, err := h.svc.Checkin(c.Request.Context(), service.CheckinInput{
		UserID:  userID,
		Energy:  req.Energy,
		Emotion: req.Emotion,
		Note:    req.Note,
	})
	if err != nil {
		if err == service.ErrInvalidEmotion || err == service.ErrInvalidEnergy {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: out})
}
