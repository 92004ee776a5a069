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

func TestCreateTask(t *testing.T) {
	tasks := new(MockTaskRepo)
	userID := uuid.New()

	tasks.On("Create", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
		return task.UserID == userID && task.Title == "Sort the mail" && task.State == model.TaskStatePending
	})).Return(nil)

	svc := NewTaskService(tasks, new(MockAISessionRepo), new(MockGenerator), zap.NewNop())
	task, err := svc.Create(context.Background(), userID, "Sort the mail")

	require.NoError(t, err)
	assert.Equal(t, "Sort the mail", task.Title)
	tasks.AssertExpectations(t)
}

func TestCreateTaskRejectsBlankTitle(t *testing.T) {
	svc := NewTaskService(new(MockTaskRepo), new(MockAISessionRepo), new(MockGenerator), zap.NewNop())

	_, err := svc.Create(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestBreakdownOrdersStepsFromOne(t *testing.T) {
	tasks := new(MockTaskRepo)
	audit := new(MockAISessionRepo)
	gen := new(MockGenerator)
	userID := uuid.New()
	taskID := uuid.New()

	tasks.On("GetForUser", mock.Anything, taskID, userID).
		Return(&model.Task{ID: taskID, UserID: userID, Title: "Pack for the trip"}, nil)
	gen.On("BreakdownTask", mock.Anything, "Pack for the trip", (*int)(nil), "").
		Return([]genai.StepDraft{{Content: "a"}, {Content: "b"}, {Content: "c"}})
	tasks.On("AppendSteps", mock.Anything, mock.MatchedBy(func(steps []*model.Step) bool {
		if len(steps) != 3 {
			return false
		}
		for i, s := range steps {
			if s.Order != i+1 || s.TaskID != taskID || s.State != model.StepStatePending {
				return false
			}
		}
		return true
	})).Return(nil)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewTaskService(tasks, audit, gen, zap.NewNop())
	steps, err := svc.Breakdown(context.Background(), taskID, userID, nil, "")

	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, 1, steps[0].Order)
	assert.Equal(t, 3, steps[2].Order)
	tasks.AssertExpectations(t)
}

func TestBreakdownPassesMoodContext(t *testing.T) {
	tasks := new(MockTaskRepo)
	audit := new(MockAISessionRepo)
	gen := new(MockGenerator)
	userID := uuid.New()
	taskID := uuid.New()
	energy := 1

	tasks.On("GetForUser", mock.Anything, taskID, userID).
		Return(&model.Task{ID: taskID, UserID: userID, Title: "Taxes"}, nil)
	gen.On("BreakdownTask", mock.Anything, "Taxes", &energy, "anxious").
		Return([]genai.StepDraft{{Content: "open the folder"}})
	tasks.On("AppendSteps", mock.Anything, mock.Anything).Return(nil)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewTaskService(tasks, audit, gen, zap.NewNop())
	_, err := svc.Breakdown(context.Background(), taskID, userID, &energy, "anxious")

	require.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestBreakdownUnknownTask(t *testing.T) {
	tasks := new(MockTaskRepo)
	notFound := errors.New("record not found")

	tasks.On("GetForUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, notFound)

	svc := NewTaskService(tasks, new(MockAISessionRepo), new(MockGenerator), zap.NewNop())
	_, err := svc.Breakdown(context.Background(), uuid.New(), uuid.New(), nil, "")

	assert.ErrorIs(t, err, notFound)
}

func TestListTasks(t *testing.T) {
	tasks := new(MockTaskRepo)
	userID := uuid.New()
	want := []model.Task{{Title: "newest"}, {Title: "older"}}

	tasks.On("ListByUser", mock.Anything, userID).Return(want, nil)

	svc := NewTaskService(tasks, new(MockAISessionRepo), new(MockGenerator), zap.NewNop())
	got, err := svc.List(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
