package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/gentle-app/gentle-api/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ErrEmptyTitle rejects task creation without a title.
var ErrEmptyTitle = errors.New("task title must not be empty")

type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, title string) (*model.Task, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	GetDetail(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error)
	// Breakdown generates ordered steps for the task. Task state is left
	// untouched. energy/emotion are optional mood context.
	Breakdown(ctx context.Context, taskID, userID uuid.UUID, energy *int, emotion string) ([]model.Step, error)
}

type taskService struct {
	tasks repo.TaskRepo
	audit repo.AISessionRepo
	gen   Generator
	log   *zap.Logger
}

func NewTaskService(tasks repo.TaskRepo, audit repo.AISessionRepo, gen Generator, log *zap.Logger) TaskService {
	return &taskService{tasks: tasks, audit: audit, gen: gen, log: log}
}

func (s *taskService) Create(ctx context.Context, userID uuid.UUID, title string) (*model.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	task := &model.Task{
		UserID: userID,
		Title:  title,
		State:  model.TaskStatePending,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) GetDetail(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error) {
	return s.tasks.GetDetailForUser(ctx, taskID, userID)
}

func (s *taskService) Breakdown(ctx context.Context, taskID, userID uuid.UUID, energy *int, emotion string) ([]model.Step, error) {
	task, err := s.tasks.GetForUser(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	drafts := s.gen.BreakdownTask(ctx, task.Title, energy, emotion)

	// Order follows emission sequence, 1-based.
	steps := make([]*model.Step, 0, len(drafts))
	for i, d := range drafts {
		steps = append(steps, &model.Step{
			TaskID:  task.ID,
			Content: d.Content,
			Order:   i + 1,
			State:   model.StepStatePending,
		})
	}
	if err := s.tasks.AppendSteps(ctx, steps); err != nil {
		return nil, err
	}

	contents := make([]interface{}, 0, len(drafts))
	for _, d := range drafts {
		contents = append(contents, d.Content)
	}
	s.writeAudit(ctx, userID,
		datatypes.JSONMap{"operation": "task_breakdown", "task_id": task.ID.String(), "title": task.Title},
		datatypes.JSONMap{"steps": contents},
	)

	out := make([]model.Step, 0, len(steps))
	for _, st := range steps {
		out = append(out, *st)
	}
	return out, nil
}

func (s *taskService) writeAudit(ctx context.Context, userID uuid.UUID, input, output datatypes.JSONMap) {
	err := s.audit.Create(ctx, &model.AISession{UserID: userID, Input: input, Output: output})
	if err != nil {
		s.log.Sugar().Warnw("ai session audit write failed", "user_id", userID, "err", err)
	}
}
