package repo

import (
	"context"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepo interface {
	// Create persists a task, creating its owning user first if absent.
	Create(ctx context.Context, t *model.Task) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	// GetForUser loads a task without steps; gorm.ErrRecordNotFound when
	// absent or owned by someone else.
	GetForUser(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error)
	// GetDetailForUser loads a task with steps ordered ascending.
	GetDetailForUser(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error)
	// AppendSteps persists one generated batch atomically.
	AppendSteps(ctx context.Context, steps []*model.Step) error
	// MaxStepOrder returns the highest step order in the task, 0 when it
	// has no steps.
	MaxStepOrder(ctx context.Context, taskID uuid.UUID) (int, error)
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrCreate(&model.User{}, &model.User{ID: t.UserID}).Error; err != nil {
			return err
		}
		return tx.Create(t).Error
	})
}

func (r *taskRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	return tasks, r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
}

func (r *taskRepo) GetForUser(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) GetDetailForUser(ctx context.Context, taskID, userID uuid.UUID) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) AppendSteps(ctx context.Context, steps []*model.Step) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range steps {
			if err := tx.Create(s).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *taskRepo) MaxStepOrder(ctx context.Context, taskID uuid.UUID) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&model.Step{}).
		Where("task_id = ?", taskID).
		Select("COALESCE(MAX(step_order), 0)").
		Scan(&max).Error
	return max, err
}
