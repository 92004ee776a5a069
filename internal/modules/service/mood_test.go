package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/gentle-app/gentle-api/internal/pkg/genai"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckinPersistsMoodTaskAndStep(t *testing.T) {
	moods := new(MockMoodRepo)
	audit := new(MockAISessionRepo)
	gen := new(MockGenerator)
	userID := uuid.New()
	stepID := uuid.New()

	gen.On("TinyStepFromMood", mock.Anything, 1, "tired", "long day").
		Return(genai.TinyStep{Content: "sip some water", Rationale: "hydration is a gentle reset"})

	moods.On("CreateCheckin", mock.Anything,
		mock.MatchedBy(func(m *model.Mood) bool {
			return m.UserID == userID && m.Energy == 1 && m.Emotion == "tired"
		}),
		mock.MatchedBy(func(task *model.Task) bool {
			return task.UserID == userID && task.State == model.TaskStateActive && task.Title != ""
		}),
		mock.MatchedBy(func(step *model.Step) bool {
			return step.Content == "sip some water" && step.Order == 1 && step.State == model.StepStatePending
		}),
	).Run(func(args mock.Arguments) {
		args.Get(3).(*model.Step).ID = stepID
	}).Return(nil)

	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewMoodService(moods, audit, gen, zap.NewNop())
	note := "long day"
	out, err := svc.Checkin(context.Background(), CheckinInput{
		UserID:  userID,
		Energy:  1,
		Emotion: "tired",
		Note:    &note,
	})

	require.NoError(t, err)
	assert.Equal(t, stepID, out.StepID)
	assert.Equal(t, "sip some water", out.Content)
	assert.Equal(t, "hydration is a gentle reset", out.Rationale)
	moods.AssertExpectations(t)
	gen.AssertExpectations(t)
}

func TestCheckinRejectsInvalidEnergy(t *testing.T) {
	svc := NewMoodService(new(MockMoodRepo), new(MockAISessionRepo), new(MockGenerator), zap.NewNop())

	_, err := svc.Checkin(context.Background(), CheckinInput{UserID: uuid.New(), Energy: 5, Emotion: "calm"})
	assert.ErrorIs(t, err, ErrInvalidEnergy)

	_, err = svc.Checkin(context.Background(), CheckinInput{UserID: uuid.New(), Energy: -1, Emotion: "calm"})
	assert.ErrorIs(t, err, ErrInvalidEnergy)
}

func TestCheckinRejectsUnknownEmotion(t *testing.T) {
	svc := NewMoodService(new(MockMoodRepo), new(MockAISessionRepo), new(MockGenerator), zap.NewNop())

	_, err := svc.Checkin(context.Background(), CheckinInput{UserID: uuid.New(), Energy: 2, Emotion: "melancholy"})
	assert.ErrorIs(t, err, ErrInvalidEmotion)
}

func TestCheckinPropagatesRepoError(t *testing.T) {
	moods := new(MockMoodRepo)
	gen := new(MockGenerator)

	gen.On("TinyStepFromMood", mock.Anything, 3, "calm", "").
		Return(genai.TinyStep{Content: "c", Rationale: "r"})
	moods.On("CreateCheckin", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("db down"))

	svc := NewMoodService(moods, new(MockAISessionRepo), gen, zap.NewNop())
	_, err := svc.Checkin(context.Background(), CheckinInput{UserID: uuid.New(), Energy: 3, Emotion: "calm"})
	assert.EqualError(t, err, "db down")
}

func TestCheckinAuditFailureDoesNotSurface(t *testing.T) {
	moods := new(MockMoodRepo)
	audit := new(MockAISessionRepo)
	gen := new(MockGenerator)

	gen.On("TinyStepFromMood", mock.Anything, 2, "mixed", "").
		Return(genai.TinyStep{Content: "c", Rationale: "r"})
	moods.On("CreateCheckin", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	audit.On("Create", mock.Anything, mock.Anything).Return(errors.New("audit table missing"))

	svc := NewMoodService(moods, audit, gen, zap.NewNop())
	out, err := svc.Checkin(context.Background(), CheckinInput{UserID: uuid.New(), Energy: 2, Emotion: "mixed"})

	require.NoError(t, err)
	assert.NotNil(t, out)
}
