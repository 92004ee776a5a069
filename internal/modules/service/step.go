package service

import (
	"context"
	"time"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/gentle-app/gentle-api/internal/modules/repo"
	"github.com/gentle-app/gentle-api/internal/pkg/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type CompleteOutput struct {
	Kind          string `json:"kind"`
	Message       string `json:"message"`
	TaskCompleted bool   `json:"taskCompleted"`
}

type StepService interface {
	// Complete marks a step done, records a celebration and, when it was
	// the last pending step, completes the owning task. The celebration
	// notification is enqueued after commit and never affects the result.
	Complete(ctx context.Context, stepID, userID uuid.UUID) (*CompleteOutput, error)
	// Rebalance appends 2-4 smaller steps after the task's current
	// maximum order. The oversized original stays pending.
	Rebalance(ctx context.Context, stepID, userID uuid.UUID) ([]model.Step, error)
}

type stepService struct {
	steps repo.StepRepo
	tasks repo.TaskRepo
	audit repo.AISessionRepo
	gen   Generator
	pub   Publisher
	log   *zap.Logger
}

func NewStepService(steps repo.StepRepo, tasks repo.TaskRepo, audit repo.AISessionRepo, gen Generator, pub Publisher, log *zap.Logger) StepService {
	return &stepService{steps: steps, tasks: tasks, audit: audit, gen: gen, pub: pub, log: log}
}

func (s *stepService) Complete(ctx context.Context, stepID, userID uuid.UUID) (*CompleteOutput, error) {
	step, err := s.steps.GetForUser(ctx, stepID, userID)
	if err != nil {
		return nil, err
	}

	celebration, taskCompleted, err := s.steps.Complete(ctx, step, userID)
	if err != nil {
		return nil, err
	}

	taskTitle := ""
	if step.Task != nil {
		taskTitle = step.Task.Title
	}
	s.enqueueCelebration(types.CelebrationJob{
		CelebrationID: celebration.ID,
		UserID:        userID,
		StepID:        celebration.StepID,
		TaskTitle:     taskTitle,
		Kind:          celebration.Kind,
	})

	return &CompleteOutput{
		Kind:          celebration.Kind,
		Message:       "You did it! 🎉",
		TaskCompleted: taskCompleted,
	}, nil
}

// enqueueCelebration publishes fire-and-forget: the request context is
// not reused, the outcome is not awaited, failures are logged only.
func (s *stepService) enqueueCelebration(job types.CelebrationJob) {
	if s.pub == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.pub.PublishJSON(ctx, job); err != nil {
			s.log.Sugar().Warnw("celebration publish failed",
				"celebration_id", job.CelebrationID, "err", err)
		}
	}()
}

func (s *stepService) Rebalance(ctx context.Context, stepID, userID uuid.UUID) ([]model.Step, error) {
	step, err := s.steps.GetForUser(ctx, stepID, userID)
	if err != nil {
		return nil, err
	}

	drafts := s.gen.RebalanceStep(ctx, step.Content)

	maxOrder, err := s.tasks.MaxStepOrder(ctx, step.TaskID)
	if err != nil {
		return nil, err
	}

	newSteps := make([]*model.Step, 0, len(drafts))
	for i, d := range drafts {
		newSteps = append(newSteps, &model.Step{
			TaskID:  step.TaskID,
			Content: d.Content,
			Order:   maxOrder + i + 1,
			State:   model.StepStatePending,
		})
	}
	if err := s.tasks.AppendSteps(ctx, newSteps); err != nil {
		return nil, err
	}

	contents := make([]interface{}, 0, len(drafts))
	for _, d := range drafts {
		contents = append(contents, d.Content)
	}
	err = s.audit.Create(ctx, &model.AISession{
		UserID: userID,
		Input:  datatypes.JSONMap{"operation": "step_rebalance", "step_id": step.ID.String(), "content": step.Content},
		Output: datatypes.JSONMap{"steps": contents},
	})
	if err != nil {
		s.log.Sugar().Warnw("ai session audit write failed", "user_id", userID, "err", err)
	}

	out := make([]model.Step, 0, len(newSteps))
	for _, st := range newSteps {
		out = append(out, *st)
	}
	return out, nil
}
