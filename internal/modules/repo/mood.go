package repo

import (
	"context"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"gorm.io/gorm"
)

type MoodRepo interface {
	// CreateCheckin persists one mood check-in unit of work: the owning
	// user (created if absent), the mood row, the synthetic task and its
	// single step. All writes commit together or not at all.
	CreateCheckin(ctx context.Context, mood *model.Mood, task *model.Task, step *model.Step) error
}

type moodRepo struct{ db *gorm.DB }

func NewMoodRepo(db *gorm.DB) MoodRepo {
	return &moodRepo{db: db}
}

func (r *moodRepo) CreateCheckin(ctx context.Context, mood *model.Mood, task *model.Task, step *model.Step) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.FirstOrCreate(&model.User{}, &model.User{ID: mood.UserID}).Error; err != nil {
			return err
		}
		if err := tx.Create(mood).Error; err != nil {
			return err
		}
		if err := tx.Create(task).Error; err != nil {
			return err
		}
		step.TaskID = task.ID
		return tx.Create(step).Error
	})
}
