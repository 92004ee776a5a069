package repo

import (
	"context"

	"github.com/gentle-app/gentle-api/internal/modules/model"
	"gorm.io/gorm"
)

// AISessionRepo is append-only; nothing in the service reads audit rows
// back.
type AISessionRepo interface {
	Create(ctx context.Context, s *model.AISession) error
}

type aiSessionRepo struct{ db *gorm.DB }

func NewAISessionRepo(db *gorm.DB) AISessionRepo {
	return &aiSessionRepo{db: db}
}

func (r *aiSessionRepo) Create(ctx context.Context, s *model.AISession) error {
	return r.db.WithContext(ctx).Create(s).Error
}
