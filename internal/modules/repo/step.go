package repo

import (
	"context"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StepRepo interface {
	// GetForUser loads a step with its task preloaded. Ownership is
	// transitive through the task; gorm.ErrRecordNotFound when the step
	// is absent or the task belongs to someone else.
	GetForUser(ctx context.Context, stepID, userID uuid.UUID) (*model.Step, error)
	// Complete marks the step done, records one celebration referencing
	// it, and completes the parent task when no pending siblings remain.
	// All of it commits in one transaction. Returns the celebration and
	// whether the task transitioned to done.
	Complete(ctx context.Context, step *model.Step, userID uuid.UUID) (*model.Celebration, bool, error)
}

type stepRepo struct{ db *gorm.DB }

func NewStepRepo(db *gorm.DB) StepRepo {
	return &stepRepo{db: db}
}

func (r *stepRepo) GetForUser(ctx context.Context, stepID, userID uuid.UUID) (*model.Step, error) {
	var step model.Step
	err := r.db.WithContext(ctx).
		Preload("Task").
		Joins("JOIN tasks ON tasks.id = steps.task_id").
		Where("steps.id = ? AND tasks.user_id = ?", stepID, userID).
		First(&step).Error
	if err != nil {
		return nil, err
	}
	return &step, nil
}

func (r *stepRepo) Complete(ctx context.Context, step *model.Step, userID uuid.UUID) (*model.Celebration, bool, error) {
	celebration := &model.Celebration{
		UserID: userID,
		StepID: &step.ID,
		Kind:   model.CelebrationConfetti,
	}
	taskCompleted := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Step{}).
			Where("id = ?", step.ID).
			Update("state", model.StepStateDone).Error; err != nil {
			return err
		}
		step.State = model.StepStateDone

		if err := tx.Create(celebration).Error; err != nil {
			return err
		}

		var pending int64
		if err := tx.Model(&model.Step{}).
			Where("task_id = ? AND state = ?", step.TaskID, model.StepStatePending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending == 0 {
			if err := tx.Model(&model.Task{}).
				Where("id = ?", step.TaskID).
				Update("state", model.TaskStateDone).Error; err != nil {
				return err
			}
			taskCompleted = true
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return celebration, taskCompleted, nil
}
