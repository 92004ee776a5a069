package service

import (
	"context"
	"errors"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/gentle-app/gentle-api/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ErrInvalidEmotion rejects emotions outside the closed enum.
var ErrInvalidEmotion = errors.New("invalid emotion")

// ErrInvalidEnergy rejects energy outside 0..4.
var ErrInvalidEnergy = errors.New("energy must be between 0 and 4")

// checkinTaskTitle is the synthetic title of the task that carries a
// mood-driven suggestion.
const checkinTaskTitle = "Gentle: mood-driven micro-step"

type CheckinInput struct {
	UserID  uuid.UUID
	Energy  int
	Emotion string
	Note    *string
}

type CheckinOutput struct {
	StepID    uuid.UUID `json:"step_id"`
	Content   string    `json:"content"`
	Rationale string    `json:"rationale"`
}

type MoodService interface {
	// Checkin records the mood, generates a tiny step sized to it, and
	// persists a synthetic active task holding that step.
	Checkin(ctx context.Context, in CheckinInput) (*CheckinOutput, error)
}

type moodService struct {
	moods repo.MoodRepo
	audit repo.AISessionRepo
	gen   Generator
	log   *zap.Logger
}

func NewMoodService(moods repo.MoodRepo, audit repo.AISessionRepo, gen Generator, log *zap.Logger) MoodService {
	return &moodService{moods: moods, audit: audit, gen: gen, log: log}
}

func (s *moodService) Checkin(ctx context.Context, in CheckinInput) (*CheckinOutput, error) {
	if in.Energy < 0 || in.Energy > 4 {
		return nil, ErrInvalidEnergy
	}
	if !model.IsValidEmotion(in.Emotion) {
		return nil, ErrInvalidEmotion
	}

	note := ""
	if in.Note != nil {
		note = *in.Note
	}
	suggestion := s.gen.TinyStepFromMood(ctx, in.Energy, in.Emotion, note)

	mood := &model.Mood{
		UserID:  in.UserID,
		Energy:  in.Energy,
		Emotion: in.Emotion,
		Note:    in.Note,
	}
	task := &model.Task{
		UserID: in.UserID,
		Title:  checkinTaskTitle,
		State:  model.TaskStateActive,
	}
	step := &model.Step{
		Content: suggestion.Content,
		Order:   1,
		State:   model.StepStatePending,
	}

	if err := s.moods.CreateCheckin(ctx, mood, task, step); err != nil {
		return nil, err
	}

	s.writeAudit(ctx, in.UserID,
		datatypes.JSONMap{"operation": "mood_checkin", "energy": in.Energy, "emotion": in.Emotion, "note": note},
		datatypes.JSONMap{"content": suggestion.Content, "rationale": suggestion.Rationale},
	)

	return &CheckinOutput{
		StepID:    step.ID,
		Content:   suggestion.Content,
		Rationale: suggestion.Rationale,
	}, nil
}

// writeAudit appends one AI session row. The audit log is best-effort
// and never fails the user-facing operation.
func (s *moodService) writeAudit(ctx context.Context, userID uuid.UUID, input, output datatypes.JSONMap) {
	err := s.audit.Create(ctx, &model.AISession{UserID: userID, Input: input, Output: output})
	if err != nil {
		s.log.Sugar().Warnw("ai session audit write failed", "user_id", userID, "err", err)
	}
}
