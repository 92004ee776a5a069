package service

import (
	"context"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/gentle-app/gentle-api/internal/pkg/genai"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMoodRepo is a mock implementation of repo.MoodRepo
type MockMoodRepo struct {
	mock.Mock
}

func (m *MockMoodRepo) CreateCheckin(ctx context.Context, mood *model.Mood, task *model.Task, step *model.Step) error {
	args := m.Called(ctx, mood, task, step)
	return args.Error(0)
}

// MockTaskRepo is a mock implementation of repo.TaskRepo
type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, t *model.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepo) GetForUser(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, taskID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) GetDetailForUser(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, taskID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepo) AppendSteps(ctx context.Context, steps []*model.Step) error {
	args := m.Called(ctx, steps)
	return args.Error(0)
}

func (m *MockTaskRepo) MaxStepOrder(ctx context.Context, taskID uuid.UUID) (int, error) {
	args := m.Called(ctx, taskID)
	return args.Int(0), args.Error(1)
}

// MockStepRepo is a mock implementation of repo.StepRepo
type MockStepRepo struct {
	mock.Mock
}

func (m *MockStepRepo) GetForUser(ctx context.Context, stepID, userID uuid.UUID) (*model.Step, error) {
	args := m.Called(ctx, stepID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Step), args.Error(1)
}

func (m *MockStepRepo) Complete(ctx context.Context, step *model.Step, userID uuid.UUID) (*model.Celebration, bool, error) {
	args := m.Called(ctx, step, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Celebration), args.Bool(1), args.Error(2)
}

// MockAISessionRepo is a mock implementation of repo.AISessionRepo
type MockAISessionRepo struct {
	mock.Mock
}

func (m *MockAISessionRepo) Create(ctx context.Context, s *model.AISession) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) TinyStepFromMood(ctx context.Context, energy int, emotion string, note string) genai.TinyStep {
	args := m.Called(ctx, energy, emotion, note)
	return args.Get(0).(genai.TinyStep)
}

func (m *MockGenerator) BreakdownTask(ctx context.Context, title string, energy *int, emotion string) []genai.StepDraft {
	args := m.Called(ctx, title, energy, emotion)
	return args.Get(0).([]genai.StepDraft)
}

func (m *MockGenerator) RebalanceStep(ctx context.Context, stepContent string) []genai.StepDraft {
	args := m.Called(ctx, stepContent)
	return args.Get(0).([]genai.StepDraft)
}

// MockPublisher is a mock implementation of Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, v interface{}) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
